package lox

import (
	"strings"
	"testing"
)

// distanceRecorder implements binder and keeps every reported pair.
type distanceRecorder struct {
	distances map[Expr]int
}

func (r *distanceRecorder) resolve(expr Expr, depth int) {
	if r.distances == nil {
		r.distances = map[Expr]int{}
	}
	r.distances[expr] = depth
}

func resolveSource(t *testing.T, source string) (*distanceRecorder, error) {
	t.Helper()
	statements := mustParse(t, source)
	recorder := &distanceRecorder{}
	return recorder, NewResolver(recorder).Resolve(statements)
}

func expectResolveError(t *testing.T, source, message string) {
	t.Helper()
	_, err := resolveSource(t, source)
	if err == nil {
		t.Fatalf("%s: expected a resolve error", source)
	}
	if _, ok := err.(*ResolveError); !ok {
		t.Fatalf("%s: error is %T, want *ResolveError", source, err)
	}
	if !strings.Contains(err.Error(), message) {
		t.Errorf("%s: diagnostic %q does not mention %q", source, err.Error(), message)
	}
}

func TestSelfReferentialInitializer(t *testing.T) {
	expectResolveError(t,
		`var a = "outer"; { var a = a; }`,
		"Can't read local variable in its own initializer.")
}

func TestGlobalSelfReferenceIsAllowed(t *testing.T) {
	// at top level there is no tracked scope; the reference goes to globals.
	if _, err := resolveSource(t, "var a = a;"); err != nil {
		t.Fatalf("unexpected resolve error: %v", err)
	}
}

func TestRedeclarationInSameScope(t *testing.T) {
	expectResolveError(t,
		"{ var a = 1; var a = 2; }",
		"Already a variable with this name in this scope.")
}

func TestRedeclarationInGlobalsIsAllowed(t *testing.T) {
	if _, err := resolveSource(t, "var a = 1; var a = 2;"); err != nil {
		t.Fatalf("unexpected resolve error: %v", err)
	}
}

func TestReturnAtTopLevel(t *testing.T) {
	expectResolveError(t, "return 1;", "Can't return from top-level code.")
}

func TestReturnValueFromInitializer(t *testing.T) {
	expectResolveError(t,
		"class C { init() { return 1; } }",
		"Can't return a value from an initializer.")
}

func TestBareReturnFromInitializerIsAllowed(t *testing.T) {
	if _, err := resolveSource(t, "class C { init() { return; } }"); err != nil {
		t.Fatalf("unexpected resolve error: %v", err)
	}
}

func TestThisOutsideClass(t *testing.T) {
	expectResolveError(t, "print this;", "Can't use 'this' outside of a class.")
	expectResolveError(t, "fun f() { return this; }", "Can't use 'this' outside of a class.")
}

func TestSuperOutsideClass(t *testing.T) {
	expectResolveError(t, "print super.x;", "Can't use 'super' outside of a class.")
}

func TestSuperWithoutSuperclass(t *testing.T) {
	expectResolveError(t,
		"class C { m() { return super.m(); } }",
		"Can't use 'super' in a class with no superclass.")
}

func TestClassInheritingFromItself(t *testing.T) {
	expectResolveError(t, "class Oops < Oops {}", "A class can't inherit from itself.")
}

func TestFailsFastOnFirstError(t *testing.T) {
	// both statements are invalid; only the first is reported.
	_, err := resolveSource(t, "return 1;\nprint this;")
	if err == nil {
		t.Fatal("expected a resolve error")
	}
	if !strings.Contains(err.Error(), "Can't return from top-level code.") {
		t.Errorf("resolution did not stop at the first error: %v", err)
	}
}

// Two reads of the same name at different positions are separate nodes and
// get their own distances.
func TestDistinctNodesResolveIndependently(t *testing.T) {
	recorder, err := resolveSource(t, `
{
  var x = 1;
  {
    print x;
  }
  print x;
}`)
	if err != nil {
		t.Fatalf("unexpected resolve error: %v", err)
	}
	if len(recorder.distances) != 2 {
		t.Fatalf("got %d recorded bindings, want 2: %v", len(recorder.distances), recorder.distances)
	}
	seen := map[int]int{}
	for _, d := range recorder.distances {
		seen[d]++
	}
	if seen[0] != 1 || seen[1] != 1 {
		t.Errorf("distances got %v, want one 0 and one 1", seen)
	}
}

func TestGlobalReferencesGetNoDistance(t *testing.T) {
	recorder, err := resolveSource(t, "var x = 1; print x;")
	if err != nil {
		t.Fatalf("unexpected resolve error: %v", err)
	}
	if len(recorder.distances) != 0 {
		t.Errorf("globals should not be in the binding table: %v", recorder.distances)
	}
}

func TestParameterAndClosureDistances(t *testing.T) {
	recorder, err := resolveSource(t, `
fun outer(a) {
  fun inner() {
    return a;
  }
  return inner;
}`)
	if err != nil {
		t.Fatalf("unexpected resolve error: %v", err)
	}
	// `a` is read from inner's scope while it lives in outer's: distance 1.
	// `inner` in the return is read within outer's own scope: distance 0.
	seen := map[int]int{}
	for _, d := range recorder.distances {
		seen[d]++
	}
	if seen[1] != 1 || seen[0] != 1 {
		t.Errorf("distances got %v, want one 0 and one 1", seen)
	}
}
