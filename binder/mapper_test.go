package binder

import (
	"bytes"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"form-binder/control"
	"form-binder/convert"
	"form-binder/property"
)

type Status int

const (
	StatusDraft Status = iota
	StatusPublished
)

var statusEnum = property.NewEnumType("Status",
	property.EnumMember{Name: "StatusDraft", Value: int(StatusDraft)},
	property.EnumMember{Name: "StatusPublished", Value: int(StatusPublished)},
)

type testObject struct {
	TextBoxText             string
	LabelProperty           string
	LiteralProperty         string
	LinkButtonProperty      string
	ButtonProperty          string
	ImageProperty           string
	DropDownListProperty    string
	CheckBoxProperty        bool
	RadioButtonListProperty string
	HiddenFieldProperty     string
	Count                   int
	Approved                *bool
	Status                  Status
	PublishedOn             *time.Time
	Slug                    string
}

var testObjectFields = []property.Field{
	property.String("TextBoxText", func(o *testObject) string { return o.TextBoxText }, func(o *testObject, v string) { o.TextBoxText = v }),
	property.String("LabelProperty", func(o *testObject) string { return o.LabelProperty }, func(o *testObject, v string) { o.LabelProperty = v }),
	property.String("LiteralProperty", func(o *testObject) string { return o.LiteralProperty }, func(o *testObject, v string) { o.LiteralProperty = v }),
	property.String("LinkButtonProperty", func(o *testObject) string { return o.LinkButtonProperty }, func(o *testObject, v string) { o.LinkButtonProperty = v }),
	property.String("ButtonProperty", func(o *testObject) string { return o.ButtonProperty }, func(o *testObject, v string) { o.ButtonProperty = v }),
	property.String("ImageProperty", func(o *testObject) string { return o.ImageProperty }, func(o *testObject, v string) { o.ImageProperty = v }),
	property.String("DropDownListProperty", func(o *testObject) string { return o.DropDownListProperty }, func(o *testObject, v string) { o.DropDownListProperty = v }),
	property.Bool("CheckBoxProperty", func(o *testObject) bool { return o.CheckBoxProperty }, func(o *testObject, v bool) { o.CheckBoxProperty = v }),
	property.String("RadioButtonListProperty", func(o *testObject) string { return o.RadioButtonListProperty }, func(o *testObject, v string) { o.RadioButtonListProperty = v }),
	property.String("HiddenFieldProperty", func(o *testObject) string { return o.HiddenFieldProperty }, func(o *testObject, v string) { o.HiddenFieldProperty = v }),
	property.Int("Count", func(o *testObject) int { return o.Count }, func(o *testObject, v int) { o.Count = v }),
	property.NullableBool("Approved", func(o *testObject) *bool { return o.Approved }, func(o *testObject, v *bool) { o.Approved = v }),
	property.Enum("Status", statusEnum, func(o *testObject) Status { return o.Status }, func(o *testObject, v Status) { o.Status = v }),
	property.NullableTime("PublishedOn", func(o *testObject) *time.Time { return o.PublishedOn }, func(o *testObject, v *time.Time) { o.PublishedOn = v }),
	property.String("Slug", func(o *testObject) string { return o.Slug }, nil),
}

func (*testObject) BindingFields() []property.Field { return testObjectFields }

func newForm(children ...*control.Control) *control.Control {
	return control.New(control.Container, "form1").Add(children...)
}

func TestLoad_TextKinds(t *testing.T) {
	tests := []struct {
		name string
		ctl  *control.Control
		obj  *testObject
		read func(*control.Control) string
		want string
	}{
		{
			name: "text box",
			ctl:  control.New(control.TextInput, "txb_TextBoxText"),
			obj:  &testObject{TextBoxText: "Test Value"},
			read: func(c *control.Control) string { return c.Text },
			want: "Test Value",
		},
		{
			name: "label",
			ctl:  control.New(control.Label, "lbl_LabelProperty"),
			obj:  &testObject{LabelProperty: "Test Value"},
			read: func(c *control.Control) string { return c.Text },
			want: "Test Value",
		},
		{
			name: "literal",
			ctl:  control.New(control.Literal, "lit_LiteralProperty"),
			obj:  &testObject{LiteralProperty: "Test Value"},
			read: func(c *control.Control) string { return c.Text },
			want: "Test Value",
		},
		{
			name: "link button",
			ctl:  control.New(control.LinkButton, "lnk_LinkButtonProperty"),
			obj:  &testObject{LinkButtonProperty: "Test Value"},
			read: func(c *control.Control) string { return c.CommandArgument },
			want: "Test Value",
		},
		{
			name: "button",
			ctl:  control.New(control.Button, "btn_ButtonProperty"),
			obj:  &testObject{ButtonProperty: "Test Value"},
			read: func(c *control.Control) string { return c.Text },
			want: "Test Value",
		},
		{
			name: "image",
			ctl:  control.New(control.Image, "img_ImageProperty"),
			obj:  &testObject{ImageProperty: "TestImageUrl"},
			read: func(c *control.Control) string { return c.ImageURL },
			want: "TestImageUrl",
		},
		{
			name: "hidden field",
			ctl:  control.New(control.Hidden, "hf_HiddenFieldProperty"),
			obj:  &testObject{HiddenFieldProperty: "Test Value"},
			read: func(c *control.Control) string { return c.Value },
			want: "Test Value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			New().Load(newForm(tt.ctl), tt.obj, false, false)
			assert.Equal(t, tt.want, tt.read(tt.ctl))
		})
	}
}

func TestLoad_SelectionKinds(t *testing.T) {
	checkBox := control.New(control.CheckBox, "cbx_CheckBoxProperty")
	dropDown := control.New(control.DropDown, "ddl_DropDownListProperty").
		AddOption("Other", "Other").
		AddOption("Test Value", "Test Value")
	radio := control.New(control.RadioGroup, "rbl_RadioButtonListProperty").
		AddOption("Test Label", "Test Value")

	obj := &testObject{
		CheckBoxProperty:        true,
		DropDownListProperty:    "Test Value",
		RadioButtonListProperty: "Test Value",
	}

	New().Load(newForm(checkBox, dropDown, radio), obj, false, false)

	assert.True(t, checkBox.Checked)
	assert.Equal(t, "Test Value", control.Value(dropDown))
	assert.Equal(t, 0, radio.SelectedIndex())
}

func TestLoad_EnumAndDate(t *testing.T) {
	status := control.New(control.DropDown, "ddl_Status").
		AddOption("Draft", "0").
		AddOption("Published", "1")
	published := control.New(control.TextInput, "txb_PublishedOn")
	day := time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)

	New(WithLocale(language.German)).Load(newForm(status, published), &testObject{
		Status:      StatusPublished,
		PublishedOn: &day,
	}, false, false)

	assert.Equal(t, "1", control.Value(status))
	assert.Equal(t, "31.12.2023", published.Text)
}

func TestLoad_NullableBoolIntoDropDown(t *testing.T) {
	approved := control.New(control.DropDown, "ddl_Approved").
		AddOption("Unknown", "-1").
		AddOption("Yes", "1").
		AddOption("No", "0")
	yes := true

	New().Load(newForm(approved), &testObject{Approved: &yes}, false, false)
	assert.Equal(t, "1", control.Value(approved))

	approved.Select(0)
	New().Load(newForm(approved), &testObject{}, false, false)
	assert.Equal(t, "-1", control.Value(approved), "a nil value leaves the control alone")
}

func TestLoad_LockAndIgnoreStrings(t *testing.T) {
	text := control.New(control.TextInput, "txb_TextBoxText")
	text.Text = "typed by user"
	link := control.New(control.LinkButton, "lnk_LinkButtonProperty")

	New().Load(newForm(text, link), &testObject{TextBoxText: "stored", LinkButtonProperty: "42"}, true, true)

	assert.Equal(t, "typed by user", text.Text)
	assert.False(t, text.Enabled)
	assert.Equal(t, "42", link.CommandArgument)
	assert.False(t, link.Visible)
}

func TestLoad_NoMatchingControl(t *testing.T) {
	other := control.New(control.TextInput, "txb_Unrelated")
	form := newForm(other)

	assert.NotPanics(t, func() {
		New().Load(form, &testObject{TextBoxText: "x"}, false, false)
	})
	assert.Empty(t, other.Text)
}

func TestLoad_NilArguments(t *testing.T) {
	assert.NotPanics(t, func() {
		New().Load(nil, &testObject{}, false, false)
		New().Load(newForm(), nil, false, false)
	})
}

func TestSave_PerKind(t *testing.T) {
	dropDown := control.New(control.DropDown, "ddl_DropDownListProperty").
		AddOption("Other", "Other").
		AddOption("Test Value", "Test Value")
	dropDown.Select(1)

	radio := control.New(control.RadioGroup, "rbl_RadioButtonListProperty").
		AddOption("Test Value", "v1")
	radio.Select(0)

	checkBox := control.New(control.CheckBox, "cbx_CheckBoxProperty")
	checkBox.Checked = true

	form := newForm(
		&control.Control{ID: "txb_TextBoxText", Kind: control.TextInput, Text: "Text"},
		&control.Control{ID: "lbl_LabelProperty", Kind: control.Label, Text: "Label"},
		&control.Control{ID: "lit_LiteralProperty", Kind: control.Literal, Text: "Literal"},
		&control.Control{ID: "lnk_LinkButtonProperty", Kind: control.LinkButton, Text: "Link", CommandArgument: "ignored"},
		&control.Control{ID: "btn_ButtonProperty", Kind: control.Button, Text: "Button"},
		&control.Control{ID: "img_ImageProperty", Kind: control.Image, ImageURL: "TestImageUrl"},
		&control.Control{ID: "hf_HiddenFieldProperty", Kind: control.Hidden, Value: "Hidden"},
		checkBox, dropDown, radio,
	)

	obj := &testObject{}
	ok := New().Save(form, obj, false)

	require.True(t, ok)
	assert.Equal(t, "Text", obj.TextBoxText)
	assert.Equal(t, "Label", obj.LabelProperty)
	assert.Equal(t, "Literal", obj.LiteralProperty)
	assert.Equal(t, "Link", obj.LinkButtonProperty)
	assert.Equal(t, "Button", obj.ButtonProperty)
	assert.Equal(t, "TestImageUrl", obj.ImageProperty)
	assert.Equal(t, "Hidden", obj.HiddenFieldProperty)
	assert.True(t, obj.CheckBoxProperty)
	assert.Equal(t, "Test Value", obj.DropDownListProperty)
	assert.Equal(t, "Test Value", obj.RadioButtonListProperty)
}

func TestSave_TypedProperties(t *testing.T) {
	status := control.New(control.DropDown, "ddl_Status").AddOption("Draft", "0").AddOption("Published", "1")
	status.Select(1)

	form := newForm(
		&control.Control{ID: "txb_Count", Kind: control.TextInput, Text: "12"},
		&control.Control{ID: "hf_Approved", Kind: control.Hidden, Value: "0"},
		&control.Control{ID: "txb_PublishedOn", Kind: control.TextInput, Text: "12/31/2023"},
		status,
	)

	obj := &testObject{}
	require.Empty(t, New().SaveErrors(form, obj, false))

	assert.Equal(t, 12, obj.Count)
	require.NotNil(t, obj.Approved)
	assert.False(t, *obj.Approved)
	assert.Equal(t, StatusPublished, obj.Status)
	require.NotNil(t, obj.PublishedOn)
	assert.Equal(t, time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC), *obj.PublishedOn)
}

func TestSave_PartialFailure(t *testing.T) {
	form := newForm(
		&control.Control{ID: "txb_Count", Kind: control.TextInput, Text: "twelve"},
		&control.Control{ID: "txb_TextBoxText", Kind: control.TextInput, Text: "saved"},
	)

	obj := &testObject{Count: 5}
	errs := New().SaveErrors(form, obj, false)

	require.Len(t, errs, 1)

	var ce *convert.ConversionError
	require.ErrorAs(t, errs["txb_Count"], &ce)
	assert.Equal(t, 5, obj.Count)
	assert.Equal(t, "saved", obj.TextBoxText)

	assert.False(t, New().Save(form, &testObject{}, false))
	assert.ErrorContains(t, errs.Err(), "txb_Count")
}

func TestSave_EnumParseError(t *testing.T) {
	form := newForm(&control.Control{ID: "hf_Status", Kind: control.Hidden, Value: "Archived"})

	errs := New().SaveErrors(form, &testObject{}, false)

	var pe *convert.ParseError
	require.ErrorAs(t, errs["hf_Status"], &pe)
}

func TestSave_EmptyValueOnNonNullable(t *testing.T) {
	form := newForm(&control.Control{ID: "txb_Count", Kind: control.TextInput, Text: ""})

	obj := &testObject{Count: 3}
	errs := New().SaveErrors(form, obj, false)

	var ae *property.AssignmentError
	require.ErrorAs(t, errs["txb_Count"], &ae)
	assert.Equal(t, 3, obj.Count)
}

func TestSave_NullableHandling(t *testing.T) {
	yes := true

	t.Run("nil kept without allowNullable", func(t *testing.T) {
		form := newForm(&control.Control{ID: "hf_Approved", Kind: control.Hidden, Value: "-1"})
		obj := &testObject{Approved: &yes}

		require.True(t, New().Save(form, obj, false))
		assert.Same(t, &yes, obj.Approved)
	})

	t.Run("nil assigned with allowNullable", func(t *testing.T) {
		form := newForm(&control.Control{ID: "hf_Approved", Kind: control.Hidden, Value: "unknown"})
		obj := &testObject{Approved: &yes}

		require.True(t, New().Save(form, obj, true))
		assert.Nil(t, obj.Approved)
	})

	t.Run("empty nullable date cleared with allowNullable", func(t *testing.T) {
		day := time.Now()
		form := newForm(&control.Control{ID: "txb_PublishedOn", Kind: control.TextInput})
		obj := &testObject{PublishedOn: &day}

		require.True(t, New().Save(form, obj, true))
		assert.Nil(t, obj.PublishedOn)
	})
}

func TestSave_SkipsUnreadableAndReadOnly(t *testing.T) {
	element := control.New(control.Element, "span_TextBoxText")
	element.Attributes.Set("value", "ignored")

	form := newForm(
		element,
		&control.Control{ID: "txb_Slug", Kind: control.TextInput, Text: "new-slug"},
	)

	obj := &testObject{TextBoxText: "kept", Slug: "old"}
	require.True(t, New().Save(form, obj, false))

	assert.Equal(t, "kept", obj.TextBoxText)
	assert.Equal(t, "old", obj.Slug)
}

func TestSave_NilArguments(t *testing.T) {
	assert.True(t, New().Save(nil, &testObject{}, false))
	assert.True(t, New().Save(newForm(), nil, false))
}

func TestRoundTrip_String(t *testing.T) {
	text := control.New(control.TextInput, "txb_TextBoxText")
	form := newForm(text)
	m := New()

	m.Load(form, &testObject{TextBoxText: "round trip"}, false, false)

	out := &testObject{}
	require.True(t, m.Save(form, out, false))
	assert.Equal(t, "round trip", out.TextBoxText)
}

func TestSuffixFormat(t *testing.T) {
	text := control.New(control.TextInput, "TextBoxText-input")
	m := New(WithSuffixFormat("%s-input"))

	m.Load(newForm(text), &testObject{TextBoxText: "v"}, false, false)

	assert.Equal(t, "v", text.Text)
	assert.Equal(t, "_Name", New().Suffix("Name"))
}

func TestLogger_ReportsFailures(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	logger.SetLevel(log.DebugLevel)

	form := newForm(&control.Control{ID: "txb_Count", Kind: control.TextInput, Text: "x"})
	New(WithLogger(logger)).Save(form, &testObject{}, false)

	assert.Contains(t, buf.String(), "property not saved")
	assert.Contains(t, buf.String(), "txb_Count")
}

func TestFieldErrors_JoinsDuplicates(t *testing.T) {
	fe := make(FieldErrors)
	fe.add("a", assert.AnError)
	fe.add("a", property.ErrReadOnly)

	assert.ErrorIs(t, fe["a"], assert.AnError)
	assert.ErrorIs(t, fe["a"], property.ErrReadOnly)
	assert.NoError(t, FieldErrors{}.Err())
}
