package rate

import "testing"

func TestDetect(t *testing.T) {
	cases := []struct {
		name string
		want int
	}{
		{"capture_2048k_foo.cu8", 2048000},
		{"plain.cu8", DefaultHz},
		{"gfile_1024k.data", 1024000},
		{"x2560kx.cs16", 2560000},
		{"3200k", 3200000},
		{"", DefaultHz},
		{"capture_2048K.cu8", DefaultHz},
		// Tokens are scanned in table order, so 1024k wins over 2048k.
		{"both_2048k_1024k.cu8", 1024000},
		{"both_3200k_2560k.cu8", 2560000},
	}
	for _, tc := range cases {
		if got := Detect(tc.name); got != tc.want {
			t.Errorf("Detect(%q) = %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestTokensOrder(t *testing.T) {
	got := Tokens()
	want := []string{"1024k", "2048k", "2560k", "3200k"}
	if len(got) != len(want) {
		t.Fatalf("expected %d tokens, got %d", len(want), len(got))
	}
	for i, tok := range got {
		if tok.Text != want[i] {
			t.Fatalf("token %d: got %q want %q", i, tok.Text, want[i])
		}
	}
	got[0].Hz = 1
	if Detect("1024k") != 1024000 {
		t.Fatal("mutating Tokens() result leaked into table")
	}
}
