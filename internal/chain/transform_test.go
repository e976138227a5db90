package chain

import (
	"crypto/sha512"
	"encoding/base64"
	"encoding/hex"
	"testing"
)

func TestHashHexAndSuffix(t *testing.T) {
	sum := sha512.Sum512([]byte("user@example.com"))
	want := hex.EncodeToString(sum[:])

	got := HashHex("user@example.com")
	if got != want {
		t.Fatalf("HashHex = %s, want %s", got, want)
	}
	if s := Suffix(got); s != want[len(want)-4:] {
		t.Fatalf("Suffix = %q", s)
	}
	if s := Suffix("ab"); s != "ab" {
		t.Fatalf("Suffix(short) = %q", s)
	}
}

func TestTransform(t *testing.T) {
	encoded := base64.StdEncoding.EncodeToString([]byte("hunter2"))
	tests := []struct {
		name, kind, old string
		wantReplacement string
		wantPlaintext   string
		wantErr         bool
	}{
		{"plain", KindPlain, "s3cret", "s3cretab12", "s3cretab12", false},
		{"flag", KindFlag, "flag{d4rk_r04st}", "flag{d4rk_r04st_ab12}", "d4rk_r04st_ab12", false},
		{"flag greedy", KindFlag, "flag{a}b}", "flag{a}b_ab12}", "a}b_ab12", false},
		{"flag malformed", KindFlag, "FLAG{x}", "", "", true},
		{"flag empty", KindFlag, "flag{}", "", "", true},
		{"base64", KindBase64, encoded, base64.StdEncoding.EncodeToString([]byte("hunter2ab12")), "hunter2ab12", false},
		{"base64 invalid", KindBase64, "%%%", "", "", true},
		{"unknown", "rot13", "x", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rep, plain, err := Transform(tt.kind, tt.old, "ab12")
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %q %q", rep, plain)
				}
				return
			}
			if err != nil {
				t.Fatalf("Transform: %v", err)
			}
			if rep != tt.wantReplacement || plain != tt.wantPlaintext {
				t.Fatalf("Transform = (%q, %q), want (%q, %q)", rep, plain, tt.wantReplacement, tt.wantPlaintext)
			}
		})
	}
}

func TestParseMapping(t *testing.T) {
	text := "/srv/a.txt|pw1|plain text\n" +
		"too|short\n" +
		"/srv/b.txt|flag{x}|flag|alice\n" +
		"\n"

	steps := ParseMapping(text)

	if len(steps) != 2 {
		t.Fatalf("got %d steps, want 2: %+v", len(steps), steps)
	}
	if steps[0] != (Step{Path: "/srv/a.txt", Secret: "pw1", Kind: KindPlain}) {
		t.Fatalf("step 0 = %+v", steps[0])
	}
	if steps[1] != (Step{Path: "/srv/b.txt", Secret: "flag{x}", Kind: KindFlag, User: "alice"}) {
		t.Fatalf("step 1 = %+v", steps[1])
	}
	if got := ParseMapping(""); len(got) != 0 {
		t.Fatalf("empty mapping = %+v", got)
	}
}

func TestTransformBase64IgnoresNonAlphabet(t *testing.T) {
	for _, old := range []string{"aHVu\ndGVyMg==", " aHVudGVyMg== ", "aHVu dGVy\r\nMg=="} {
		repl, plain, err := Transform(KindBase64, old, "abcd")
		if err != nil {
			t.Fatalf("Transform(%q): %v", old, err)
		}
		if plain != "hunter2abcd" {
			t.Fatalf("Transform(%q) plaintext = %q", old, plain)
		}
		if repl != base64.StdEncoding.EncodeToString([]byte("hunter2abcd")) {
			t.Fatalf("Transform(%q) replacement = %q", old, repl)
		}
	}
}
