package student

import (
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/trezcool/matokeo/core"
)

// Genders
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
)

type Student struct {
	ID            string `json:"id"`
	RollNo        string `json:"rollNo"`
	Name          string `json:"name"`
	FatherName    string `json:"fatherName"`
	MotherName    string `json:"motherName"`
	Class         string `json:"class"`
	Section       string `json:"section"`
	DateOfBirth   string `json:"dateOfBirth"`
	Address       string `json:"address"`
	PhoneNumber   string `json:"phoneNumber"`
	AdmissionDate string `json:"admissionDate"`
	Gender        string `json:"gender"`
	BloodGroup    string `json:"bloodGroup,omitempty"`
	Email         string `json:"email,omitempty"`
}

// NewStudent contains information needed to create a new Student.
type NewStudent struct {
	RollNo        string `json:"rollNo" validate:"required,digits"`
	Name          string `json:"name" validate:"required,notblank"`
	FatherName    string `json:"fatherName" validate:"required,notblank"`
	MotherName    string `json:"motherName" validate:"required,notblank"`
	Class         string `json:"class" validate:"required,notblank"`
	Section       string `json:"section" validate:"required,notblank"`
	DateOfBirth   string `json:"dateOfBirth" validate:"required,datetime=2006-01-02"`
	Address       string `json:"address" validate:"required,notblank"`
	PhoneNumber   string `json:"phoneNumber" validate:"required,notblank"`
	AdmissionDate string `json:"admissionDate" validate:"required,datetime=2006-01-02"`
	Gender        string `json:"gender" validate:"required,oneof=Male Female"`
	BloodGroup    string `json:"bloodGroup" validate:"omitempty,bloodgroup"`
	Email         string `json:"email" validate:"omitempty,email"`
}

func (ns *NewStudent) clean() {
	ns.RollNo = core.CleanString(ns.RollNo)
	ns.Name = core.CleanString(ns.Name)
	ns.FatherName = core.CleanString(ns.FatherName)
	ns.MotherName = core.CleanString(ns.MotherName)
	ns.Class = core.CleanString(ns.Class)
	ns.Section = core.CleanString(ns.Section)
	ns.DateOfBirth = core.CleanString(ns.DateOfBirth)
	ns.Address = core.CleanString(ns.Address)
	ns.PhoneNumber = core.CleanString(ns.PhoneNumber)
	ns.AdmissionDate = core.CleanString(ns.AdmissionDate)
	ns.Gender = core.CleanString(ns.Gender)
	ns.BloodGroup = strings.ToUpper(core.CleanString(ns.BloodGroup))
	ns.Email = core.CleanString(ns.Email, true /* lower */)
}

func (ns *NewStudent) Validate(validate *validator.Validate, svc *Service) error {
	ns.clean()
	if err := validate.Struct(ns); err != nil {
		return err
	}
	return svc.CheckRollNoUniqueness(ns.RollNo)
}

// UpdateStudent defines what information may be provided to modify an existing Student.
// Empty fields keep their current value. RollNo may be echoed back but never changed.
type UpdateStudent struct {
	RollNo        string `json:"rollNo"`
	Name          string `json:"name"`
	FatherName    string `json:"fatherName"`
	MotherName    string `json:"motherName"`
	Class         string `json:"class"`
	Section       string `json:"section"`
	DateOfBirth   string `json:"dateOfBirth" validate:"omitempty,datetime=2006-01-02"`
	Address       string `json:"address"`
	PhoneNumber   string `json:"phoneNumber"`
	AdmissionDate string `json:"admissionDate" validate:"omitempty,datetime=2006-01-02"`
	Gender        string `json:"gender" validate:"omitempty,oneof=Male Female"`
	BloodGroup    string `json:"bloodGroup" validate:"omitempty,bloodgroup"`
	Email         string `json:"email" validate:"omitempty,email"`
}

func (us *UpdateStudent) Validate(orig Student, validate *validator.Validate) error {
	us.RollNo = core.CleanString(us.RollNo)
	if us.RollNo != "" && us.RollNo != orig.RollNo {
		return core.NewValidationError(ErrRollNoImmutable, core.FieldError{Field: "rollNo", Error: ErrRollNoImmutable.Error()})
	}
	us.RollNo = orig.RollNo

	keep := func(val *string, origVal string, lower ...bool) {
		if v := core.CleanString(*val, lower...); v != "" {
			*val = v
		} else {
			*val = origVal
		}
	}
	keep(&us.Name, orig.Name)
	keep(&us.FatherName, orig.FatherName)
	keep(&us.MotherName, orig.MotherName)
	keep(&us.Class, orig.Class)
	keep(&us.Section, orig.Section)
	keep(&us.DateOfBirth, orig.DateOfBirth)
	keep(&us.Address, orig.Address)
	keep(&us.PhoneNumber, orig.PhoneNumber)
	keep(&us.AdmissionDate, orig.AdmissionDate)
	keep(&us.Gender, orig.Gender)
	keep(&us.BloodGroup, orig.BloodGroup)
	keep(&us.Email, orig.Email, true /* lower */)
	us.BloodGroup = strings.ToUpper(us.BloodGroup)

	return validate.Struct(us)
}

type QueryFilter struct {
	Class   string `query:"class"`
	Section string `query:"section"`
	// Search does a case-insensitive match on one of Student.Name, Student.RollNo or Student.FatherName.
	Search string `query:"search"`
}

func (qf *QueryFilter) Clean() {
	qf.Class = core.CleanString(qf.Class)
	qf.Section = core.CleanString(qf.Section)
	qf.Search = core.CleanString(qf.Search, true /* lower */)
}

// Match reports whether s satisfies every set field of the (cleaned) filter.
func (qf QueryFilter) Match(s Student) bool {
	if qf.Class != "" && s.Class != qf.Class {
		return false
	}
	if qf.Section != "" && s.Section != qf.Section {
		return false
	}
	if qf.Search != "" {
		return strings.Contains(strings.ToLower(s.Name), qf.Search) ||
			strings.Contains(strings.ToLower(s.RollNo), qf.Search) ||
			strings.Contains(strings.ToLower(s.FatherName), qf.Search)
	}
	return true
}

// RollNoLess orders roll numbers numerically; non numeric ones sort after, lexically.
func RollNoLess(a, b string) bool {
	na, errA := strconv.Atoi(a)
	nb, errB := strconv.Atoi(b)
	switch {
	case errA == nil && errB == nil:
		if na != nb {
			return na < nb
		}
		return a < b
	case errA == nil:
		return true
	case errB == nil:
		return false
	default:
		return a < b
	}
}

// SortByRollNo sorts students ascending by numeric roll number.
func SortByRollNo(students []Student) {
	sort.SliceStable(students, func(i, j int) bool { return RollNoLess(students[i].RollNo, students[j].RollNo) })
}
