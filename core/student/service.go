package student

import (
	"errors"

	"github.com/trezcool/matokeo/core"
)

var (
	// errors
	ErrNotFound        = core.NewNotFoundError(errors.New("student not found"))
	ErrRollNoExists    = core.NewConflictError(errors.New("Roll number already exists"), "rollNo")
	ErrRollNoImmutable = errors.New("roll number cannot be changed")
)

type (
	Repository interface {
		CheckRollNoUniqueness(rollNo string) error
		// CreateStudent assigns a new ID; it fails with ErrRollNoExists when the roll number is taken.
		CreateStudent(s Student) (Student, error)
		GetStudentByID(id string) (Student, error)
		// FilterStudents applies AND operation on available QueryFilter fields.
		// Results are sorted ascending by numeric roll number.
		FilterStudents(filter QueryFilter) ([]Student, error)
		UpdateStudent(s Student) (Student, error)
		// DeleteStudent removes the student along with all their mark records.
		DeleteStudent(id string) (Student, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) CheckRollNoUniqueness(rollNo string) error {
	return svc.repo.CheckRollNoUniqueness(rollNo)
}

func (svc *Service) Create(ns NewStudent) (Student, error) {
	return svc.repo.CreateStudent(Student{
		RollNo:        ns.RollNo,
		Name:          ns.Name,
		FatherName:    ns.FatherName,
		MotherName:    ns.MotherName,
		Class:         ns.Class,
		Section:       ns.Section,
		DateOfBirth:   ns.DateOfBirth,
		Address:       ns.Address,
		PhoneNumber:   ns.PhoneNumber,
		AdmissionDate: ns.AdmissionDate,
		Gender:        ns.Gender,
		BloodGroup:    ns.BloodGroup,
		Email:         ns.Email,
	})
}

func (svc *Service) GetByID(id string) (Student, error) {
	return svc.repo.GetStudentByID(core.CleanString(id))
}

func (svc *Service) Query(filter QueryFilter) ([]Student, error) {
	filter.Clean()
	return svc.repo.FilterStudents(filter)
}

// InClass returns the students of one class section, sorted by roll number.
func (svc *Service) InClass(class, section string) ([]Student, error) {
	return svc.Query(QueryFilter{Class: class, Section: section})
}

// Update applies a validated UpdateStudent to the student with the given ID.
func (svc *Service) Update(id string, us UpdateStudent) (Student, error) {
	orig, err := svc.repo.GetStudentByID(id)
	if err != nil {
		return Student{}, err
	}
	if us.RollNo != "" && us.RollNo != orig.RollNo {
		return Student{}, core.NewValidationError(ErrRollNoImmutable, core.FieldError{Field: "rollNo", Error: ErrRollNoImmutable.Error()})
	}
	return svc.repo.UpdateStudent(Student{
		ID:            id,
		RollNo:        orig.RollNo,
		Name:          us.Name,
		FatherName:    us.FatherName,
		MotherName:    us.MotherName,
		Class:         us.Class,
		Section:       us.Section,
		DateOfBirth:   us.DateOfBirth,
		Address:       us.Address,
		PhoneNumber:   us.PhoneNumber,
		AdmissionDate: us.AdmissionDate,
		Gender:        us.Gender,
		BloodGroup:    us.BloodGroup,
		Email:         us.Email,
	})
}

func (svc *Service) Delete(id string) (Student, error) {
	return svc.repo.DeleteStudent(core.CleanString(id))
}
