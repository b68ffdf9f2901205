package ocpp

import (
	"testing"
)

func TestNewSchema(t *testing.T) {
	if testInfoSchema.Name() != "TestInfo" {
		t.Errorf("Name() = %q, want TestInfo", testInfoSchema.Name())
	}

	fields := testInfoSchema.Fields()
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}
	want := []string{"reasonCode", "note", CustomDataProperty}
	if len(names) != len(want) {
		t.Fatalf("Fields() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Fields()[%d] = %q, want %q", i, names[i], want[i])
		}
	}
	if !fields[0].Mandatory || fields[1].Mandatory {
		t.Error("Mandatory should reflect the field builder")
	}

	fields[0].Name = "mutated"
	if testInfoSchema.Fields()[0].Name != "reasonCode" {
		t.Error("Fields() should return a copy")
	}
}

func TestNewSchema_DefaultName(t *testing.T) {
	s := NewSchema("", RequiredField("reasonCode", "", String(), func(i *testInfo) *string { return &i.ReasonCode }))
	if s.Name() == "" {
		t.Error("an empty schema name should default to the type name")
	}
}

func TestSchema_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		obj  Object
	}{
		{"mandatory only", Object{"status": "Accepted"}},
		{"nested", Object{"status": "Rejected", "info": Object{"reasonCode": "Busy", "note": "later"}}},
		{"empty list", Object{"status": "Accepted", "tags": []any{}}},
		{"custom data", Object{"status": "Accepted", "customData": Object{"vendorId": "acme", "level": 3.0}}},
		{"empty custom data", Object{"status": "Accepted", "customData": Object{}}},
		{"nested custom data", Object{"status": "Accepted", "info": Object{"reasonCode": "X", "customData": Object{"vendorId": "v"}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := testResponseSchema.Parse(tt.obj)
			if err != nil {
				t.Fatalf("Parse() error: %v", err)
			}
			got := testResponseSchema.Serialize(m)
			if canonical(got) != canonical(tt.obj) {
				t.Errorf("Serialize() = %s, want %s", canonical(got), canonical(tt.obj))
			}

			again, err := testResponseSchema.Parse(got)
			if err != nil {
				t.Fatalf("Parse() of serialized error: %v", err)
			}
			if !testResponseSchema.Equal(m, again) {
				t.Error("parse(serialize(m)) should equal m")
			}
			if testResponseSchema.Hash(m) != testResponseSchema.Hash(again) {
				t.Error("equal values should hash equally")
			}
		})
	}
}

func TestSchema_UnknownPropertiesIgnored(t *testing.T) {
	m, err := testResponseSchema.Parse(Object{"status": "Accepted", "vendorExtra": true})
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if _, ok := testResponseSchema.Serialize(m)["vendorExtra"]; ok {
		t.Error("unknown properties should not be re-emitted by the built-in mapping")
	}
}

func TestSchema_Equal(t *testing.T) {
	note := "a"
	other := "b"
	base := testResponse{Status: testAccepted, Info: &testInfo{ReasonCode: "X", Note: &note}}

	tests := []struct {
		name  string
		other testResponse
		equal bool
	}{
		{"same", testResponse{Status: testAccepted, Info: &testInfo{ReasonCode: "X", Note: &note}}, true},
		{"status", testResponse{Status: testRejected, Info: &testInfo{ReasonCode: "X", Note: &note}}, false},
		{"nested optional", testResponse{Status: testAccepted, Info: &testInfo{ReasonCode: "X", Note: &other}}, false},
		{"nested absent", testResponse{Status: testAccepted, Info: &testInfo{ReasonCode: "X"}}, false},
		{"optional absent", testResponse{Status: testAccepted}, false},
		{"empty list", testResponse{Status: testAccepted, Info: &testInfo{ReasonCode: "X", Note: &note}, Tags: []string{}}, false},
		{"custom data", testResponse{Status: testAccepted, Info: &testInfo{ReasonCode: "X", Note: &note}, CustomData: NewCustomData(nil)}, false},
		{"empty signatures", testResponse{Status: testAccepted, Info: &testInfo{ReasonCode: "X", Note: &note}, Signatures: NewSignatureSet()}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := testResponseSchema.Equal(base, tt.other); got != tt.equal {
				t.Errorf("Equal() = %v, want %v", got, tt.equal)
			}
			if tt.equal && testResponseSchema.Hash(base) != testResponseSchema.Hash(tt.other) {
				t.Error("Equal values should hash equally")
			}
		})
	}
}

func TestSchema_EqualIgnoresFrame(t *testing.T) {
	a := testRequest{RequestFrame: NewRequestFrame(), Kind: testAccepted}
	b := testRequest{RequestFrame: NewRequestFrame(), Kind: testAccepted}

	if a.RequestID() == b.RequestID() {
		t.Fatal("frames should carry distinct ids")
	}
	if !testRequestSchema.Equal(a, b) || testRequestSchema.Hash(a) != testRequestSchema.Hash(b) {
		t.Error("the frame should not take part in equality or hashing")
	}
}

func TestSchema_HashComposition(t *testing.T) {
	s := NewSchema("Pair",
		RequiredField("a", "", Integer(), func(p *[2]int) *int { return &p[0] }),
		RequiredField("b", "", Integer(), func(p *[2]int) *int { return &p[1] }),
	)

	want := NewHasher().Add(3).Add(5).Sum()
	if got := s.Hash([2]int{3, 5}); got != want {
		t.Errorf("Hash() = %d, want %d", got, want)
	}
	if s.Hash([2]int{3, 5}) == s.Hash([2]int{5, 3}) {
		t.Error("field order should matter")
	}
}

func TestSchema_OptionalHashContribution(t *testing.T) {
	s := NewSchema("Opt",
		OptionalField("n", "", Integer(), func(p **int) **int { return p }),
	)
	seven := 7
	if s.Hash(nil) != NewHasher().Add(0).Sum() {
		t.Error("absent optional should contribute 0")
	}
	if s.Hash(&seven) != NewHasher().Add(Integer().Hash(7)).Sum() {
		t.Error("present optional should contribute its value hash")
	}
}
