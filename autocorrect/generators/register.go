// Package generators is the catalog of fix generators for the
// autocorrection engine, one per diagnostic shape.
package generators

import "github.com/jonwraymond/errguard/autocorrect"

// All returns every catalog generator, in the order RegisterAll registers
// them, for callers that want to inspect the catalog directly.
func All() []autocorrect.Generator {
	return []autocorrect.Generator{
		UnusedImport{},
		UnusedVariable{},
		DanglingExpression{},
		MismatchedTypes{},
		JSONSyntax{},
		YAMLSyntax{},
		IOPermissionDenied{},
		IOMissingDirectory{},
		NetworkConnectionRefused{},
		NetworkTLSCertificate{},
		ConfigMissingKey{},
		DivisionByZeroGuard{},
		NotFoundExistenceCheck{},
	}
}

// RegisterAll wires the full catalog into engine, in insertion order.
func RegisterAll(engine *autocorrect.Engine) {
	for _, gen := range All() {
		engine.AddGenerator(gen)
	}
}
