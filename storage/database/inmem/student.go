package inmemdb

import (
	"github.com/trezcool/matokeo/core/student"
)

type studentRepository struct {
	db *DB
}

func NewStudentRepository(db *DB) student.Repository {
	return &studentRepository{db: db}
}

func (repo *studentRepository) rollNoTaken(rollNo, excludedID string) bool {
	for _, s := range repo.db.student.table {
		if s.RollNo == rollNo && s.ID != excludedID {
			return true
		}
	}
	return false
}

func (repo *studentRepository) CheckRollNoUniqueness(rollNo string) error {
	repo.db.student.mutex.RLock()
	defer repo.db.student.mutex.RUnlock()

	if repo.rollNoTaken(rollNo, "") {
		return student.ErrRollNoExists
	}
	return nil
}

func (repo *studentRepository) CreateStudent(s student.Student) (student.Student, error) {
	repo.db.student.mutex.Lock()
	defer repo.db.student.mutex.Unlock()

	if repo.rollNoTaken(s.RollNo, "") {
		return student.Student{}, student.ErrRollNoExists
	}
	s.ID = newID("student")
	repo.db.student.table[s.ID] = &s
	return s, nil
}

func (repo *studentRepository) GetStudentByID(id string) (student.Student, error) {
	repo.db.student.mutex.RLock()
	defer repo.db.student.mutex.RUnlock()

	if s, ok := repo.db.student.table[id]; ok {
		return *s, nil
	}
	return student.Student{}, student.ErrNotFound
}

func (repo *studentRepository) FilterStudents(filter student.QueryFilter) ([]student.Student, error) {
	repo.db.student.mutex.RLock()
	defer repo.db.student.mutex.RUnlock()

	students := make([]student.Student, 0)
	for _, s := range repo.db.student.table {
		if filter.Match(*s) {
			students = append(students, *s)
		}
	}
	student.SortByRollNo(students)
	return students, nil
}

func (repo *studentRepository) UpdateStudent(s student.Student) (student.Student, error) {
	repo.db.student.mutex.Lock()
	defer repo.db.student.mutex.Unlock()

	orig, ok := repo.db.student.table[s.ID]
	if !ok {
		return student.Student{}, student.ErrNotFound
	}
	s.RollNo = orig.RollNo
	repo.db.student.table[s.ID] = &s
	return s, nil
}

func (repo *studentRepository) DeleteStudent(id string) (student.Student, error) {
	repo.db.student.mutex.Lock()
	defer repo.db.student.mutex.Unlock()

	s, ok := repo.db.student.table[id]
	if !ok {
		return student.Student{}, student.ErrNotFound
	}

	repo.db.mark.mutex.Lock()
	defer repo.db.mark.mutex.Unlock()
	for key := range repo.db.mark.table {
		if key.StudentID == id {
			delete(repo.db.mark.table, key)
		}
	}

	delete(repo.db.student.table, id)
	return *s, nil
}
