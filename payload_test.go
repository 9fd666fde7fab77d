package huff

import (
	"errors"
	"reflect"
	"testing"
)

func TestPayloadRoundTrip(t *testing.T) {
	texts := []string{
		"aaaa",
		"abracadabra",
		"high bytes \xc3\xa9\xff\x80 and control \x01\x02",
	}
	for _, text := range texts {
		e, err := Encode(text)
		if err != nil {
			t.Fatalf("Encode(%q) error %s", text, err)
		}
		p, err := e.Payload()
		if err != nil {
			t.Fatalf("Payload for %q error %s", text, err)
		}
		g, err := ParsePayload(p)
		if err != nil {
			t.Fatalf("ParsePayload for %q error %s", text, err)
		}
		if !reflect.DeepEqual(g, e) {
			t.Errorf("ParsePayload returned %+v; want %+v", g, e)
		}
	}
}

func TestPayloadFormat(t *testing.T) {
	e, err := Encode("aaaa")
	if err != nil {
		t.Fatalf("Encode error %s", err)
	}
	p, err := e.Payload()
	if err != nil {
		t.Fatalf("Payload error %s", err)
	}
	const want = `{"codes":{"97":"0"},"bits":"0000"}`
	if string(p) != want {
		t.Errorf("Payload returned %s; want %s", p, want)
	}
}

func TestParsePayloadErrors(t *testing.T) {
	tests := []struct {
		name string
		p    string
	}{
		{"garbage", "not json at all"},
		{"no codes", `{"bits":"0000"}`},
		{"no bits", `{"codes":{"97":"0"}}`},
		{"empty", ``},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParsePayload([]byte(tc.p))
			if !errors.Is(err, ErrPayload) {
				t.Fatalf("ParsePayload(%q) returned error %v;"+
					" want %v", tc.p, err, ErrPayload)
			}
		})
	}
}
