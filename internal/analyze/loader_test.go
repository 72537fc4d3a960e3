package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"form-binder/property"
)

const customerPkg = "form-binder/examples/customer"

func loadCustomer(t *testing.T) *StructInfo {
	t.Helper()

	analyzer := NewAnalyzer()
	_, err := analyzer.LoadPackages(customerPkg)
	require.NoError(t, err)

	info, err := analyzer.Struct(customerPkg, "Customer")
	require.NoError(t, err)

	return info
}

func TestAnalyzer_LoadPackages(t *testing.T) {
	analyzer := NewAnalyzer()
	graph, err := analyzer.LoadPackages(customerPkg)
	require.NoError(t, err)
	require.NotNil(t, graph)

	require.Contains(t, graph.Packages, customerPkg)

	pkg := graph.Packages[customerPkg]
	assert.Equal(t, "customer", pkg.Name)
	assert.NotEmpty(t, pkg.Dir)
	assert.Equal(t, []TypeID{{PkgPath: customerPkg, Name: "Customer"}}, pkg.Structs)
}

func TestAnalyzer_FieldOrder(t *testing.T) {
	info := loadCustomer(t)

	var names []string
	for _, f := range info.Fields {
		names = append(names, f.Name)
	}

	assert.Equal(t, []string{
		"ID", "Name", "Email", "Status", "Newsletter", "Birthday",
		"Balance", "Visits", "CreatedAt", "Comments",
	}, names)
}

func TestAnalyzer_Classification(t *testing.T) {
	info := loadCustomer(t)

	tests := []struct {
		name        string
		kind        property.Kind
		nullable    bool
		readOnly    bool
		convert     string
		constructor string
		valueType   string
	}{
		{"ID", property.KindInt, false, true, "", "Int", "int"},
		{"Name", property.KindString, false, false, "", "String", "string"},
		{"Email", property.KindString, false, false, "Email", "String", "string"},
		{"Status", property.KindEnum, false, false, "", "Enum", "Status"},
		{"Newsletter", property.KindBool, true, false, "", "NullableBool", "*bool"},
		{"Birthday", property.KindTime, true, false, "", "NullableTime", "*time.Time"},
		{"Balance", property.KindFloat64, false, false, "", "Float64", "float64"},
		{"Visits", property.KindInt64, true, false, "", "NullableInt64", "*int64"},
		{"CreatedAt", property.KindTime, false, true, "", "Time", "time.Time"},
		{"Comments", property.KindString, false, false, "", "String", "string"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := info.Field(tt.name)
			require.NotNil(t, f)

			assert.Equal(t, tt.kind, f.Kind)
			assert.Equal(t, tt.nullable, f.Nullable)
			assert.Equal(t, tt.readOnly, f.ReadOnly)
			assert.Equal(t, tt.convert, f.Convert)
			assert.Equal(t, tt.constructor, f.Constructor())
			assert.Equal(t, tt.valueType, f.ValueType())
		})
	}
}

func TestAnalyzer_RenamedField(t *testing.T) {
	info := loadCustomer(t)

	f := info.Field("Comments")
	require.NotNil(t, f)
	assert.Equal(t, "Notes", f.GoName)
	assert.Nil(t, info.Field("Notes"))
}

func TestAnalyzer_Enum(t *testing.T) {
	info := loadCustomer(t)

	f := info.Field("Status")
	require.NotNil(t, f)
	require.NotNil(t, f.Enum)

	assert.Equal(t, TypeID{PkgPath: customerPkg, Name: "Status"}, f.Enum.ID)
	assert.Equal(t, []EnumMember{
		{Name: "StatusProspect", Value: 0},
		{Name: "StatusActive", Value: 1},
		{Name: "StatusSuspended", Value: 2},
		{Name: "StatusClosed", Value: 9},
	}, f.Enum.Members)
}

func TestAnalyzer_Skipped(t *testing.T) {
	info := loadCustomer(t)

	assert.Equal(t, []SkippedField{
		{Name: "Password", Reason: "excluded by tag"},
		{Name: "Tags", Reason: "unsupported type []string"},
	}, info.Skipped)
}

func TestAnalyzer_StructNotFound(t *testing.T) {
	analyzer := NewAnalyzer()
	_, err := analyzer.LoadPackages(customerPkg)
	require.NoError(t, err)

	_, err = analyzer.Struct(customerPkg, "Order")
	assert.ErrorContains(t, err, "not found")
}

func TestAnalyzer_LoadError(t *testing.T) {
	analyzer := NewAnalyzer()
	_, err := analyzer.LoadPackages("form-binder/does/not/exist")
	assert.Error(t, err)
}

func TestParseTag(t *testing.T) {
	tests := []struct {
		tag      string
		name     string
		readOnly bool
		skip     bool
	}{
		{"", "", false, false},
		{"-", "", false, true},
		{"Email", "Email", false, false},
		{",readonly", "", true, false},
		{"Created,readonly", "Created", true, false},
		{"-,", "-", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			name, readOnly, skip := parseTag(tt.tag)
			assert.Equal(t, tt.name, name)
			assert.Equal(t, tt.readOnly, readOnly)
			assert.Equal(t, tt.skip, skip)
		})
	}
}
