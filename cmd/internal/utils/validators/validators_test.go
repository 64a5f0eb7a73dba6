package validators

import "testing"

func TestIsCINValid(t *testing.T) {
	cases := []struct {
		cin  string
		want bool
	}{
		{"L99999XX2023PLC123456", true},
		{"U12345MH2019PTC654321", true},
		{"F00001DL2001LLC000001", true},
		{"L99999XX2023PLC12345", false},  // one digit short
		{"X99999XX2023PLC123456", false}, // bad class letter
		{"l99999xx2023plc123456", false}, // lowercase
		{"", false},
	}

	for _, c := range cases {
		if got := IsCINValid(c.cin); got != c.want {
			t.Errorf("IsCINValid(%q) = %v, want %v", c.cin, got, c.want)
		}
	}
}

func TestIsPANValid(t *testing.T) {
	cases := []struct {
		pan  string
		want bool
	}{
		{"ABCDE1234F", true},
		{"ABCDE1234", false},
		{"ABCD11234F", false},
		{"abcde1234f", false},
		{"", false},
	}

	for _, c := range cases {
		if got := IsPANValid(c.pan); got != c.want {
			t.Errorf("IsPANValid(%q) = %v, want %v", c.pan, got, c.want)
		}
	}
}

func TestIsGSTINValid(t *testing.T) {
	cases := []struct {
		gstin string
		want  bool
	}{
		{"", true}, // optional field passes vacuously
		{"22AAAAA0000A1Z5", true},
		{"22AAAAA0000A1Z", false}, // missing trailing char
		{"22AAAAA0000A1X5", false},
		{"2AAAAAA0000A1Z5", false},
	}

	for _, c := range cases {
		if got := IsGSTINValid(c.gstin); got != c.want {
			t.Errorf("IsGSTINValid(%q) = %v, want %v", c.gstin, got, c.want)
		}
	}
}
