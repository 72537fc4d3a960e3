package convert

import "golang.org/x/text/language"

// isoDate is used when no locale matches.
const isoDate = "2006-01-02"

// shortDates maps locales to their conventional numeric short date layout.
// The first entry is the fallback the matcher returns for unknown locales.
var shortDates = []struct {
	tag    language.Tag
	layout string
}{
	{language.Und, isoDate},
	{language.AmericanEnglish, "1/2/2006"},
	{language.BritishEnglish, "02/01/2006"},
	{language.German, "02.01.2006"},
	{language.French, "02/01/2006"},
	{language.Italian, "02/01/2006"},
	{language.Spanish, "02/01/2006"},
	{language.BrazilianPortuguese, "02/01/2006"},
	{language.Dutch, "2-1-2006"},
	{language.Polish, "02.01.2006"},
	{language.Russian, "02.01.2006"},
	{language.Swedish, isoDate},
	{language.Japanese, "2006/01/02"},
	{language.SimplifiedChinese, "2006/1/2"},
	{language.Korean, isoDate},
}

var dateMatcher = func() language.Matcher {
	tags := make([]language.Tag, len(shortDates))
	for i, d := range shortDates {
		tags[i] = d.tag
	}

	return language.NewMatcher(tags)
}()

// ShortDateLayout returns the time layout of the short date format for tag.
func ShortDateLayout(tag language.Tag) string {
	_, i, conf := dateMatcher.Match(tag)
	if conf == language.No || i < 0 || i >= len(shortDates) {
		return isoDate
	}

	return shortDates[i].layout
}
