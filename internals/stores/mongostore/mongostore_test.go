package mongostore

import (
	"errors"
	"strings"
	"testing"

	"hrms_backend/internals/stores"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestIndexBuildErrorExplainsDuplicates(t *testing.T) {
	dup := mongo.CommandError{Code: 11000, Message: "E11000 duplicate key error collection: hrms_lite.attendance"}

	err := indexBuildError(AttendanceCollection, "(employee_id, date)", dup)
	if !strings.Contains(err.Error(), "existing duplicate (employee_id, date) values must be removed first") {
		t.Fatalf("err = %v", err)
	}
	if !mongo.IsDuplicateKeyError(err) {
		t.Fatal("wrapped error lost the duplicate-key code")
	}

	other := indexBuildError(EmployeesCollection, "employee_id", errors.New("timeout"))
	if strings.Contains(other.Error(), "duplicate") {
		t.Fatalf("non-duplicate error mislabelled: %v", other)
	}
}

func TestTranslate(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want error
	}{
		{"nil", nil, nil},
		{"no documents", mongo.ErrNoDocuments, stores.ErrNotFound},
		{"duplicate", mongo.WriteException{WriteErrors: mongo.WriteErrors{{Code: 11000}}}, stores.ErrDuplicateKey},
	}
	for _, tt := range tests {
		if got := translate(tt.in); !errors.Is(got, tt.want) && got != tt.want {
			t.Errorf("%s: translate = %v, want %v", tt.name, got, tt.want)
		}
	}

	boom := errors.New("boom")
	if got := translate(boom); got != boom {
		t.Errorf("translate passthrough = %v", got)
	}
}

func TestDocToModel(t *testing.T) {
	oid := primitive.NewObjectID()
	m := employeeDoc{ID: oid, EmployeeID: "E1", FullName: "Jane", Email: "j@example.com", Department: "IT"}.toModel()
	if m.ID != oid.Hex() || m.EmployeeID != "E1" || string(m.Department) != "IT" {
		t.Fatalf("toModel = %+v", m)
	}
}
