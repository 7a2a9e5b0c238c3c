package grade

import (
	"encoding/json"
	"testing"

	"github.com/pkg/errors"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Category
		wantErr error
	}{
		{name: "formative", in: "Formative", want: Formative},
		{name: "summative", in: "Summative", want: Summative},
		{name: "case insensitive", in: "sUmMaTiVe", want: Summative},
		{name: "surrounding spaces", in: "  formative ", want: Formative},
		{name: "empty", in: "", wantErr: ErrUnknownCategory},
		{name: "unknown", in: "Diagnostic", wantErr: ErrUnknownCategory},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCategory(tt.in)
			if errors.Cause(err) != tt.wantErr {
				t.Fatalf("ParseCategory() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseCategory() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCategory_Text(t *testing.T) {
	data, err := json.Marshal([]Category{Formative, Summative})
	if err != nil {
		t.Fatalf("json.Marshal() failed: %v", err)
	}
	if string(data) != `["Formative","Summative"]` {
		t.Errorf("json.Marshal() = %s", data)
	}

	if _, err := json.Marshal(Category(0)); err == nil {
		t.Error("json.Marshal() of an invalid category should fail")
	}

	var cats []Category
	if err := json.Unmarshal([]byte(`["summative","Formative"]`), &cats); err != nil {
		t.Fatalf("json.Unmarshal() failed: %v", err)
	}
	if len(cats) != 2 || cats[0] != Summative || cats[1] != Formative {
		t.Errorf("json.Unmarshal() = %v", cats)
	}

	var cat Category
	if err := json.Unmarshal([]byte(`"Quiz"`), &cat); errors.Cause(err) != ErrUnknownCategory {
		t.Errorf("json.Unmarshal() error = %v, wantErr %v", err, ErrUnknownCategory)
	}
}
