package jsonutil

import (
	"errors"
	"io"
	"strings"
	"testing"
)

type item struct {
	ID int `json:"_id"`
}

func TestUnmarshalWithContext(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		wantErr bool
	}{
		{name: "valid JSON", data: []byte(`{"_id":7}`), wantErr: false},
		{name: "invalid JSON", data: []byte(`not json`), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v item
			err := UnmarshalWithContext(tt.data, &v, "decode item")
			if (err != nil) != tt.wantErr {
				t.Fatalf("UnmarshalWithContext() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !strings.HasPrefix(err.Error(), "decode item: ") {
				t.Errorf("error %q should carry context", err)
			}
			if !tt.wantErr && v.ID != 7 {
				t.Errorf("v.ID = %d, want 7", v.ID)
			}
		})
	}
}

func TestDecodeWithContext_EmptyBody(t *testing.T) {
	var v item
	err := DecodeWithContext(strings.NewReader("  \n"), &v, "exists")
	if err == nil || err.Error() != "exists: empty body" {
		t.Errorf("expected empty body error, got %v", err)
	}
}

func TestUnmarshalArrayAllowEmpty(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantLen int
		wantErr bool
	}{
		{name: "array", data: `[{"_id":1},{"_id":2}]`, wantLen: 2},
		{name: "empty array", data: `[]`, wantLen: 0},
		{name: "null", data: `null`, wantLen: 0},
		{name: "empty input", data: ``, wantLen: 0},
		{name: "object", data: `{"_id":1}`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := UnmarshalArrayAllowEmpty[item]([]byte(tt.data), "items")
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got == nil {
				t.Fatal("expected non-nil slice")
			}
			if len(got) != tt.wantLen {
				t.Errorf("len = %d, want %d", len(got), tt.wantLen)
			}
		})
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("reset") }

func TestDecodeArray_ReadError(t *testing.T) {
	_, err := DecodeArray[item](failingReader{}, "boards")
	if err == nil || !strings.Contains(err.Error(), "boards: read body: reset") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestMarshalBody(t *testing.T) {
	r, err := MarshalBody([]item{{ID: 3}}, "encode")
	if err != nil {
		t.Fatal(err)
	}
	data, _ := io.ReadAll(r)
	if string(data) != `[{"_id":3}]` {
		t.Errorf("body = %s", data)
	}
}
