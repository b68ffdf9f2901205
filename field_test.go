package ocpp

import (
	"errors"
	"testing"
)

func TestRequire(t *testing.T) {
	obj := Object{"reasonCode": "Busy", "count": 3.0}

	got, err := Require(obj, "reasonCode", "reason code", String())
	if err != nil || got != "Busy" {
		t.Errorf("Require() = %q, %v", got, err)
	}

	_, err = Require(obj, "status", "domain status", String())
	if !errors.Is(err, ErrMissingMandatoryField) {
		t.Fatalf("Require() error = %v, want ErrMissingMandatoryField", err)
	}
	var pe *ParseError
	if !errors.As(err, &pe) || pe.Field != "status" || pe.Description != "domain status" {
		t.Errorf("ParseError = %+v, want field status with description", pe)
	}

	_, err = Require(obj, "count", "count", String())
	if !errors.Is(err, ErrTypeMismatch) || FieldOf(err) != "count" {
		t.Errorf("Require() error = %v, want ErrTypeMismatch on count", err)
	}
}

func TestRequire_NullIsPresent(t *testing.T) {
	_, err := Require(Object{"status": nil}, "status", "", String())
	if !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("null for a string should be a type mismatch, got %v", err)
	}

	v, err := Require(Object{"data": nil}, "data", "", Any())
	if err != nil || v != nil {
		t.Errorf("null should be accepted by Any, got %v, %v", v, err)
	}
}

func TestOptional(t *testing.T) {
	obj := Object{"evseId": 2.0}

	got, err := Optional(obj, "evseId", "", Integer())
	if err != nil || got == nil || *got != 2 {
		t.Errorf("Optional() present = %v, %v", got, err)
	}

	got, err = Optional(obj, "connectorId", "", Integer())
	if err != nil || got != nil {
		t.Errorf("Optional() absent = %v, %v; want nil, nil", got, err)
	}

	_, err = Optional(Object{"evseId": "2"}, "evseId", "", Integer())
	if !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("Optional() invalid error = %v, want ErrTypeMismatch", err)
	}
}

func TestRequireList(t *testing.T) {
	got, err := RequireList(Object{"ids": []any{1.0, 2.0}}, "ids", "", Integer())
	if err != nil || len(got) != 2 || got[1] != 2 {
		t.Errorf("RequireList() = %v, %v", got, err)
	}

	_, err = RequireList(Object{}, "ids", "", Integer())
	if !errors.Is(err, ErrMissingMandatoryField) {
		t.Errorf("RequireList() absent error = %v, want ErrMissingMandatoryField", err)
	}

	_, err = RequireList(Object{"ids": 1.0}, "ids", "", Integer())
	if !errors.Is(err, ErrTypeMismatch) || FieldOf(err) != "ids" {
		t.Errorf("RequireList() non-array error = %v, want ErrTypeMismatch on ids", err)
	}
}

func TestOptionalList(t *testing.T) {
	got, err := OptionalList(Object{}, "ids", "", Integer())
	if err != nil || got != nil {
		t.Errorf("OptionalList() absent = %v, %v; want nil slice", got, err)
	}

	got, err = OptionalList(Object{"ids": []any{}}, "ids", "", Integer())
	if err != nil || got == nil || len(got) != 0 {
		t.Errorf("OptionalList() empty = %#v, %v; want empty non-nil slice", got, err)
	}
}

func TestList_ElementAttribution(t *testing.T) {
	obj := Object{"infos": []any{
		map[string]any{"reasonCode": "A"},
		map[string]any{"note": "no code"},
	}}

	_, err := RequireList(obj, "infos", "", ObjectOf(testInfoSchema))
	if err == nil {
		t.Fatal("RequireList() should fail")
	}
	if FieldOf(err) != "infos[1]" {
		t.Errorf("FieldOf() = %q, want infos[1]", FieldOf(err))
	}
	if !errors.Is(err, ErrNestedObjectInvalid) || !errors.Is(err, ErrMissingMandatoryField) {
		t.Errorf("error %v should match nested and missing sentinels", err)
	}
	if err.Error() != "infos[1]: reasonCode: missing mandatory field (reason code)" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestAttribute_ForeignError(t *testing.T) {
	err := attribute(errors.New("boom"), "status", "", ErrNestedObjectInvalid)
	if !errors.Is(err, ErrTypeMismatch) || FieldOf(err) != "status" {
		t.Errorf("attribute() = %v, want ErrTypeMismatch on status", err)
	}
}

func TestCustomType(t *testing.T) {
	// A caller-defined Type plugs into the accessor like the built-ins.
	even := Type[int]{
		Name: "even",
		Decode: func(raw any) (int, error) {
			n, err := Integer().Decode(raw)
			if err != nil {
				return 0, err
			}
			if n%2 != 0 {
				return 0, newParseError(ErrConstraint, "", "", "odd")
			}
			return n, nil
		},
		Encode: func(v int) any { return v },
		Equal:  func(a, b int) bool { return a == b },
		Hash:   func(v int) uint64 { return uint64(v) },
	}

	if _, err := Require(Object{"n": 3.0}, "n", "", even); !errors.Is(err, ErrConstraint) || FieldOf(err) != "n" {
		t.Errorf("Require() error = %v, want ErrConstraint on n", err)
	}
}
