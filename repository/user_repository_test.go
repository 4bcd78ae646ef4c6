package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"employee-portal/models"
)

func counterResponse(name string, seq int64) bson.D {
	return bson.D{
		{Key: "ok", Value: 1},
		{Key: "value", Value: bson.D{{Key: "_id", Value: name}, {Key: "seq", Value: seq}}},
	}
}

func TestCreateUser(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	defer mt.Close()

	mt.Run("assigns sequence id", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB, NewSequenceGenerator(mt.DB))
		mt.AddMockResponses(counterResponse("users", 7), mtest.CreateSuccessResponse())

		user := &models.User{EmployeeCode: "E1", Email: "a@x.io", Role: models.RoleEmployee}
		if err := repo.CreateUser(context.Background(), user); err != nil {
			t.Fatalf("CreateUser() error = %v", err)
		}
		if user.ID != 7 {
			t.Errorf("user.ID = %d, want 7", user.ID)
		}
	})

	mt.Run("duplicate email", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB, NewSequenceGenerator(mt.DB))
		mt.AddMockResponses(counterResponse("users", 8), mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key error collection: test.users index: uniq_email dup key",
		}))

		err := repo.CreateUser(context.Background(), &models.User{Email: "a@x.io"})
		if !errors.Is(err, models.ErrDuplicateEmail) {
			t.Errorf("CreateUser() error = %v, want ErrDuplicateEmail", err)
		}
	})

	mt.Run("duplicate employee code", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB, NewSequenceGenerator(mt.DB))
		mt.AddMockResponses(counterResponse("users", 9), mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key error collection: test.users index: uniq_employee_code dup key",
		}))

		err := repo.CreateUser(context.Background(), &models.User{Email: "b@x.io", EmployeeCode: "E1"})
		if !errors.Is(err, models.ErrDuplicateEmployeeCode) {
			t.Errorf("CreateUser() error = %v, want ErrDuplicateEmployeeCode", err)
		}
	})
}

func TestFindUserByEmail(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	defer mt.Close()

	mt.Run("found", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB, NewSequenceGenerator(mt.DB))
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.users", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: int64(3)},
			{Key: "employee_code", Value: "E3"},
			{Key: "email", Value: "c@x.io"},
			{Key: "role", Value: models.RoleAdmin},
			{Key: "is_active", Value: true},
			{Key: "created_at", Value: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		}))

		user, err := repo.FindUserByEmail(context.Background(), "c@x.io")
		if err != nil {
			t.Fatalf("FindUserByEmail() error = %v", err)
		}
		if user == nil || user.ID != 3 || !user.IsAdmin() || !user.IsActive {
			t.Errorf("FindUserByEmail() = %+v", user)
		}
	})

	mt.Run("not found", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB, NewSequenceGenerator(mt.DB))
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.users", mtest.FirstBatch))

		user, err := repo.FindUserByEmail(context.Background(), "nobody@x.io")
		if err != nil {
			t.Fatalf("FindUserByEmail() error = %v", err)
		}
		if user != nil {
			t.Errorf("FindUserByEmail() = %+v, want nil", user)
		}
	})
}

func TestFindEmployeesWithProfiles(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	defer mt.Close()

	mt.Run("joins profile", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB, NewSequenceGenerator(mt.DB))
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.users", mtest.FirstBatch,
			bson.D{
				{Key: "_id", Value: int64(1)},
				{Key: "email", Value: "a@x.io"},
				{Key: "role", Value: models.RoleEmployee},
				{Key: "profile", Value: bson.D{
					{Key: "_id", Value: int64(10)},
					{Key: "user_id", Value: int64(1)},
					{Key: "full_name", Value: "Ann"},
					{Key: "salary", Value: 5000.5},
				}},
			},
			bson.D{
				{Key: "_id", Value: int64(2)},
				{Key: "email", Value: "b@x.io"},
				{Key: "role", Value: models.RoleEmployee},
			},
		))

		employees, err := repo.FindEmployeesWithProfiles(context.Background())
		if err != nil {
			t.Fatalf("FindEmployeesWithProfiles() error = %v", err)
		}
		if len(employees) != 2 {
			t.Fatalf("len = %d, want 2", len(employees))
		}
		if employees[0].Profile == nil || employees[0].Profile.FullName != "Ann" || employees[0].Profile.Salary != 5000.5 {
			t.Errorf("first profile = %+v", employees[0].Profile)
		}
		if employees[1].Profile != nil {
			t.Errorf("second profile = %+v, want nil", employees[1].Profile)
		}
	})
}

func TestCountByRole(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	defer mt.Close()

	mt.Run("count", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB, NewSequenceGenerator(mt.DB))
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.users", mtest.FirstBatch, bson.D{{Key: "n", Value: int32(4)}}))

		count, err := repo.CountByRole(context.Background(), models.RoleEmployee)
		if err != nil {
			t.Fatalf("CountByRole() error = %v", err)
		}
		if count != 4 {
			t.Errorf("CountByRole() = %d, want 4", count)
		}
	})
}
