package employees

import "testing"

func TestFullName(t *testing.T) {
	e := Employee{FirstName: "Anna", LastName: "Kowalska"}
	if got := e.FullName(); got != "Anna Kowalska" {
		t.Fatalf("unexpected full name: %q", got)
	}
}

func TestValidContractType(t *testing.T) {
	if !ValidContractType("Employment Contract") {
		t.Fatal("expected Employment Contract to be valid")
	}
	if ValidContractType("Internship") {
		t.Fatal("expected Internship to be invalid")
	}
}

func TestValidWorkMode(t *testing.T) {
	if !ValidWorkMode("Hybrid") {
		t.Fatal("expected Hybrid to be valid")
	}
	if ValidWorkMode("office") {
		t.Fatal("work modes are case sensitive at the domain layer")
	}
}
