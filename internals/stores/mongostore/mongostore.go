// Package mongostore implements the Record Store on MongoDB collections
// "employees" and "attendance".
package mongostore

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	attendanceModel "hrms_backend/internals/features/hr/attendance/model"
	employeeModel "hrms_backend/internals/features/hr/employees/model"
	"hrms_backend/internals/stores"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	EmployeesCollection  = "employees"
	AttendanceCollection = "attendance"
)

type Store struct {
	db         *mongo.Database
	employees  *EmployeeStore
	attendance *AttendanceStore
}

func New(db *mongo.Database) *Store {
	return &Store{
		db:         db,
		employees:  &EmployeeStore{coll: db.Collection(EmployeesCollection)},
		attendance: &AttendanceStore{coll: db.Collection(AttendanceCollection)},
	}
}

func (s *Store) Employees() stores.EmployeeStore { return s.employees }

func (s *Store) Attendance() stores.AttendanceStore { return s.attendance }

func (s *Store) Ping(ctx context.Context) error {
	return s.db.Client().Ping(ctx, readpref.Primary())
}

func (s *Store) Close(ctx context.Context) error {
	return s.db.Client().Disconnect(ctx)
}

// EnsureIndexes membuat unique index employee_id, index email dan unique
// (employee_id, date). Aman dipanggil berulang kali.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	if _, err := s.employees.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "employee_id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uq_employees_employee_id"),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("idx_employees_email"),
		},
	}); err != nil {
		return indexBuildError(EmployeesCollection, "employee_id", err)
	}

	if _, err := s.attendance.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "employee_id", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uq_attendance_employee_date"),
		},
		{
			Keys:    bson.D{{Key: "date", Value: -1}},
			Options: options.Index().SetName("idx_attendance_date"),
		},
	}); err != nil {
		return indexBuildError(AttendanceCollection, "(employee_id, date)", err)
	}

	log.Println("[INFO] Mongo indexes ready")
	return nil
}

// indexBuildError: database lama bisa sudah berisi duplikat (mark bersamaan
// sebelum ada unique index). Build index gagal dengan 11000 dan operator harus
// membersihkan duplikat dulu, sisakan satu dokumen per key.
func indexBuildError(collection, key string, err error) error {
	if mongo.IsDuplicateKeyError(err) {
		log.Printf("[ERROR] collection %q has duplicate %s values; remove the extra documents (keep one per key) and restart", collection, key)
		return fmt.Errorf("create %s indexes: existing duplicate %s values must be removed first: %w", collection, key, err)
	}
	return fmt.Errorf("create %s indexes: %w", collection, err)
}

/* ===================== documents ===================== */

type employeeDoc struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	EmployeeID string             `bson:"employee_id"`
	FullName   string             `bson:"full_name"`
	Email      string             `bson:"email"`
	Department string             `bson:"department"`
}

func (d employeeDoc) toModel() employeeModel.EmployeeModel {
	return employeeModel.EmployeeModel{
		ID:         d.ID.Hex(),
		EmployeeID: d.EmployeeID,
		FullName:   d.FullName,
		Email:      d.Email,
		Department: employeeModel.Department(d.Department),
	}
}

type attendanceDoc struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	EmployeeID string             `bson:"employee_id"`
	Date       time.Time          `bson:"date"`
	Status     string             `bson:"status"`
}

func (d attendanceDoc) toModel() attendanceModel.AttendanceModel {
	return attendanceModel.AttendanceModel{
		ID:         d.ID.Hex(),
		EmployeeID: d.EmployeeID,
		Date:       d.Date.UTC(),
		Status:     attendanceModel.AttendanceStatus(d.Status),
	}
}

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return stores.ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return stores.ErrDuplicateKey
	default:
		return err
	}
}

/* ===================== employees ===================== */

type EmployeeStore struct {
	coll *mongo.Collection
}

func (s *EmployeeStore) findOne(ctx context.Context, filter bson.M) (employeeModel.EmployeeModel, error) {
	var doc employeeDoc
	if err := s.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		return employeeModel.EmployeeModel{}, translate(err)
	}
	return doc.toModel(), nil
}

func (s *EmployeeStore) FindByEmployeeID(ctx context.Context, employeeID string) (employeeModel.EmployeeModel, error) {
	return s.findOne(ctx, bson.M{"employee_id": employeeID})
}

func (s *EmployeeStore) FindByEmail(ctx context.Context, email string) (employeeModel.EmployeeModel, error) {
	return s.findOne(ctx, bson.M{"email": email})
}

func (s *EmployeeStore) List(ctx context.Context) ([]employeeModel.EmployeeModel, error) {
	cur, err := s.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var docs []employeeDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	out := make([]employeeModel.EmployeeModel, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toModel())
	}
	return out, nil
}

func (s *EmployeeStore) Insert(ctx context.Context, employee *employeeModel.EmployeeModel) error {
	doc := employeeDoc{
		EmployeeID: employee.EmployeeID,
		FullName:   employee.FullName,
		Email:      employee.Email,
		Department: string(employee.Department),
	}
	res, err := s.coll.InsertOne(ctx, doc)
	if err != nil {
		return translate(err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	employee.ID = oid.Hex()
	return nil
}

func (s *EmployeeStore) DeleteByEmployeeID(ctx context.Context, employeeID string) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"employee_id": employeeID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return stores.ErrNotFound
	}
	return nil
}

/* ===================== attendance ===================== */

type AttendanceStore struct {
	coll *mongo.Collection
}

var byDateDesc = bson.D{{Key: "date", Value: -1}}

func (s *AttendanceStore) FindByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (attendanceModel.AttendanceModel, error) {
	var doc attendanceDoc
	err := s.coll.FindOne(ctx, bson.M{"employee_id": employeeID, "date": date}).Decode(&doc)
	if err != nil {
		return attendanceModel.AttendanceModel{}, translate(err)
	}
	return doc.toModel(), nil
}

func (s *AttendanceStore) Insert(ctx context.Context, record *attendanceModel.AttendanceModel) error {
	doc := attendanceDoc{
		EmployeeID: record.EmployeeID,
		Date:       record.Date,
		Status:     string(record.Status),
	}
	res, err := s.coll.InsertOne(ctx, doc)
	if err != nil {
		return translate(err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	record.ID = oid.Hex()
	return nil
}

func (s *AttendanceStore) UpdateStatus(ctx context.Context, id string, status attendanceModel.AttendanceStatus) (attendanceModel.AttendanceModel, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return attendanceModel.AttendanceModel{}, stores.ErrNotFound
	}

	var doc attendanceDoc
	err = s.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"status": string(status)}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		return attendanceModel.AttendanceModel{}, translate(err)
	}
	return doc.toModel(), nil
}

func (s *AttendanceStore) find(ctx context.Context, filter bson.M) ([]attendanceModel.AttendanceModel, error) {
	cur, err := s.coll.Find(ctx, filter, options.Find().SetSort(byDateDesc))
	if err != nil {
		return nil, err
	}
	var docs []attendanceDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	out := make([]attendanceModel.AttendanceModel, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toModel())
	}
	return out, nil
}

func (s *AttendanceStore) ListByEmployee(ctx context.Context, employeeID string) ([]attendanceModel.AttendanceModel, error) {
	return s.find(ctx, bson.M{"employee_id": employeeID})
}

func (s *AttendanceStore) ListAll(ctx context.Context) ([]attendanceModel.AttendanceModel, error) {
	return s.find(ctx, bson.M{})
}

func (s *AttendanceStore) DeleteByEmployeeID(ctx context.Context, employeeID string) (int64, error) {
	res, err := s.coll.DeleteMany(ctx, bson.M{"employee_id": employeeID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
