package catalog

import (
	"errors"

	"github.com/trezcool/matokeo/core"
)

var (
	// errors
	ErrSubjectNotFound      = core.NewNotFoundError(errors.New("subject not found"))
	ErrExamTypeNotFound     = core.NewNotFoundError(errors.New("exam type not found"))
	ErrClassSectionNotFound = core.NewNotFoundError(errors.New("class section not found"))
)

type (
	// Repository gives read access to the static reference data.
	Repository interface {
		QuerySubjects() ([]Subject, error)
		GetSubject(id string) (Subject, error)
		QueryExamTypes() ([]ExamType, error)
		GetExamType(id string) (ExamType, error)
		QueryClassSections() ([]ClassSection, error)
		GetClassSection(class, section string) (ClassSection, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Subjects() ([]Subject, error) {
	return svc.repo.QuerySubjects()
}

func (svc *Service) Subject(id string) (Subject, error) {
	return svc.repo.GetSubject(core.CleanString(id))
}

// SubjectNames maps every subject ID to its display name.
func (svc *Service) SubjectNames() (map[string]string, error) {
	subjects, err := svc.repo.QuerySubjects()
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(subjects))
	for _, s := range subjects {
		names[s.ID] = s.Name
	}
	return names, nil
}

func (svc *Service) ExamTypes() ([]ExamType, error) {
	return svc.repo.QueryExamTypes()
}

func (svc *Service) ExamType(id string) (ExamType, error) {
	return svc.repo.GetExamType(core.CleanString(id))
}

func (svc *Service) ClassSections() ([]ClassSection, error) {
	return svc.repo.QueryClassSections()
}

func (svc *Service) ClassSection(class, section string) (ClassSection, error) {
	return svc.repo.GetClassSection(core.CleanString(class), core.CleanString(section))
}
