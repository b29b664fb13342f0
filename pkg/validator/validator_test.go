package validator_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	pkgvalidator "github.com/ghuser/grow/pkg/validator"
)

type sampleStruct struct {
	ID     string `validate:"required,uuid"`
	Name   string `validate:"required,notblank,min=1,max=10"`
	Length int    `validate:"required,gt=0"`
	Years  int    `validate:"gte=0"`
}

func validSample() sampleStruct {
	return sampleStruct{ID: "550e8400-e29b-41d4-a716-446655440000", Name: "hello", Length: 10}
}

func TestValidate_valid(t *testing.T) {
	s := validSample()
	if err := pkgvalidator.Validate(&s); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestValidate_missingRequired(t *testing.T) {
	s := sampleStruct{}
	if err := pkgvalidator.Validate(&s); err == nil {
		t.Fatal("expected validation error for empty struct")
	}
}

func TestFormatValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*sampleStruct)
		field  string
		want   string
	}{
		{"required", func(s *sampleStruct) { s.ID = "" }, "ID", "This field is required"},
		{"uuid", func(s *sampleStruct) { s.ID = "not-a-uuid" }, "ID", "Must be a valid UUID"},
		{"max", func(s *sampleStruct) { s.Name = "12345678901" }, "Name", "Maximum length is 10"},
		{"blank", func(s *sampleStruct) { s.Name = "   " }, "Name", "Must not be blank"},
		{"gt", func(s *sampleStruct) { s.Length = -100 }, "Length", "Must be greater than 0"},
		{"gte", func(s *sampleStruct) { s.Years = -1 }, "Years", "Must be greater than or equal to 0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validSample()
			tt.mutate(&s)
			m := pkgvalidator.FormatValidationErrors(pkgvalidator.Validate(&s))
			if m[tt.field] != tt.want {
				t.Errorf("%s: got %q, want %q", tt.field, m[tt.field], tt.want)
			}
		})
	}
}

func TestFormatValidationErrors_nonValidationError(t *testing.T) {
	m := pkgvalidator.FormatValidationErrors(http.ErrNoCookie)
	if len(m) != 0 {
		t.Errorf("expected empty map for non-validation error, got %v", m)
	}
}

// --- ValidateRequest ---

type bedReq struct {
	Length int `json:"length" validate:"required,gt=0"`
	Width  int `json:"width"  validate:"required,gt=0"`
}

func TestValidateRequest_valid(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"length":200,"width":100}`))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	req, ok := pkgvalidator.ValidateRequest[bedReq](w, r)
	if !ok {
		t.Fatalf("expected ok=true, got false. Response: %s", w.Body.String())
	}
	if req.Length != 200 || req.Width != 100 {
		t.Errorf("unexpected request: %+v", req)
	}
}

func TestValidateRequest_invalidJSON(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{bad json"))
	w := httptest.NewRecorder()

	_, ok := pkgvalidator.ValidateRequest[bedReq](w, r)
	if ok {
		t.Fatal("expected ok=false for malformed JSON")
	}
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Invalid JSON") {
		t.Errorf("expected 'Invalid JSON' in body, got: %s", w.Body.String())
	}
}

func TestValidateRequest_negativeDimension(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"length":-100,"width":50}`))
	w := httptest.NewRecorder()

	_, ok := pkgvalidator.ValidateRequest[bedReq](w, r)
	if ok {
		t.Fatal("expected ok=false for negative length")
	}
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"length"`) {
		t.Errorf("expected length field error in body, got: %s", w.Body.String())
	}
}

func TestValidateRequest_missingField(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"length":10}`))
	w := httptest.NewRecorder()

	_, ok := pkgvalidator.ValidateRequest[bedReq](w, r)
	if ok {
		t.Fatal("expected ok=false for missing width")
	}
	if !strings.Contains(w.Body.String(), "Validation failed") {
		t.Errorf("expected 'Validation failed' in body, got: %s", w.Body.String())
	}
}
