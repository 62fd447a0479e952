package log

import "testing"

func TestCategoryString(t *testing.T) {
	tests := []struct {
		cat  Category
		want string
	}{
		{CategoryFeature, "FEATURE"},
		{CategoryConfig, "CONFIG"},
		{CategoryState, "STATE"},
		{CategoryFrame, "FRAME"},
		{CategoryError, "ERROR"},
		{Category(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		got := tt.cat.String()
		if got != tt.want {
			t.Errorf("Category(%d).String() = %q, want %q", tt.cat, got, tt.want)
		}
	}
}

func TestParseCategory(t *testing.T) {
	for c := CategoryFeature; c <= CategoryError; c++ {
		got, ok := ParseCategory(c.String())
		if !ok || got != c {
			t.Errorf("ParseCategory(%q) = %v, %v", c.String(), got, ok)
		}
	}
	if _, ok := ParseCategory("MESSAGE"); ok {
		t.Error("expected unknown category to fail")
	}
}

func TestFeatureOpString(t *testing.T) {
	tests := []struct {
		op   FeatureOp
		want string
	}{
		{FeatureOpWrite, "WRITE"},
		{FeatureOpExecute, "EXECUTE"},
		{FeatureOp(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.op.String(); got != tt.want {
			t.Errorf("FeatureOp(%d).String() = %q, want %q", tt.op, got, tt.want)
		}
	}
}

func TestConfigOpString(t *testing.T) {
	tests := []struct {
		op   ConfigOp
		want string
	}{
		{ConfigOpDump, "DUMP"},
		{ConfigOpApply, "APPLY"},
		{ConfigOpRead, "READ"},
		{ConfigOp(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.op.String(); got != tt.want {
			t.Errorf("ConfigOp(%d).String() = %q, want %q", tt.op, got, tt.want)
		}
	}
}

func TestStateEntityString(t *testing.T) {
	tests := []struct {
		entity StateEntity
		want   string
	}{
		{StateEntityCamera, "CAMERA"},
		{StateEntityAcquisition, "ACQUISITION"},
		{StateEntity(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.entity.String(); got != tt.want {
			t.Errorf("StateEntity(%d).String() = %q, want %q", tt.entity, got, tt.want)
		}
	}
}
