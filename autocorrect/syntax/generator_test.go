package syntax

import (
	"strings"
	"testing"
)

func TestGenerateImportSingle(t *testing.T) {
	g := NewGenerator()
	got := g.GenerateImport("encoding/json", []string{"Marshal"})
	want := `import "encoding/json" // for Marshal`
	if got != want {
		t.Errorf("GenerateImport() = %q, want %q", got, want)
	}
}

func TestGenerateImportEmpty(t *testing.T) {
	g := NewGenerator()
	got := g.GenerateImport("fmt", nil)
	want := `import "fmt"`
	if got != want {
		t.Errorf("GenerateImport() = %q, want %q", got, want)
	}
}

func TestGenerateStruct(t *testing.T) {
	g := NewGenerator()
	got := g.GenerateStruct("User", map[string]string{"name": "string", "age": "int"}, "")

	if !strings.Contains(got, "type User struct {") {
		t.Errorf("GenerateStruct() missing type header: %q", got)
	}
	if !strings.Contains(got, "Name string") {
		t.Errorf("GenerateStruct() missing exported Name field: %q", got)
	}
	if !strings.Contains(got, "Age int") {
		t.Errorf("GenerateStruct() missing exported Age field: %q", got)
	}
}

func TestGenerateFunction(t *testing.T) {
	g := NewGenerator()
	got := g.GenerateFunction("process", map[string]string{"data": "string"}, "error", "return nil")

	if !strings.HasPrefix(got, "func process(data string) error {") {
		t.Errorf("GenerateFunction() = %q", got)
	}
	if !strings.Contains(got, "return nil") {
		t.Errorf("GenerateFunction() missing body: %q", got)
	}
}

func TestGenerateMethodCall(t *testing.T) {
	g := NewGenerator()
	got := g.GenerateMethodCall("client", "Do", []string{"req"})
	want := "client.Do(req)"
	if got != want {
		t.Errorf("GenerateMethodCall() = %q, want %q", got, want)
	}
}
