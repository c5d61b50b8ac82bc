package inmemdb

import (
	"sort"

	"github.com/trezcool/matokeo/core/mark"
	"github.com/trezcool/matokeo/core/student"
)

type markRepository struct {
	db *DB
}

func NewMarkRepository(db *DB) mark.Repository {
	return &markRepository{db: db}
}

// sorted returns copies of the rows ordered by insertion.
func sorted(rows []*markRow) []mark.Mark {
	sort.Slice(rows, func(i, j int) bool { return rows[i].seq < rows[j].seq })
	marks := make([]mark.Mark, 0, len(rows))
	for _, r := range rows {
		marks = append(marks, r.mark)
	}
	return marks
}

func (repo *markRepository) UpsertMarks(marks ...mark.Mark) ([]mark.Mark, error) {
	repo.db.student.mutex.RLock()
	defer repo.db.student.mutex.RUnlock()

	for _, m := range marks {
		if _, ok := repo.db.student.table[m.StudentID]; !ok {
			return nil, student.ErrNotFound
		}
	}

	repo.db.mark.mutex.Lock()
	defer repo.db.mark.mutex.Unlock()

	saved := make([]mark.Mark, 0, len(marks))
	for _, m := range marks {
		key := m.Key()
		if row, ok := repo.db.mark.table[key]; ok {
			row.mark.MarksObtained = m.MarksObtained
			row.mark.MaxMarks = m.MaxMarks
			row.mark.Grade = m.Grade
			row.mark.EntryDate = m.EntryDate
			saved = append(saved, row.mark)
			continue
		}
		m.ID = newID("mark")
		repo.db.mark.seq++
		repo.db.mark.table[key] = &markRow{seq: repo.db.mark.seq, mark: m}
		saved = append(saved, m)
	}
	return saved, nil
}

func (repo *markRepository) QueryMarksByStudent(studentID, examTypeID string) ([]mark.Mark, error) {
	repo.db.mark.mutex.RLock()
	defer repo.db.mark.mutex.RUnlock()

	var rows []*markRow
	for key, row := range repo.db.mark.table {
		if key.StudentID == studentID && (examTypeID == "" || key.ExamTypeID == examTypeID) {
			rows = append(rows, row)
		}
	}
	return sorted(rows), nil
}

func (repo *markRepository) QueryMarksByStudents(studentIDs []string, subjectID, examTypeID string) ([]mark.Mark, error) {
	ids := make(map[string]struct{}, len(studentIDs))
	for _, id := range studentIDs {
		ids[id] = struct{}{}
	}

	repo.db.mark.mutex.RLock()
	defer repo.db.mark.mutex.RUnlock()

	var rows []*markRow
	for key, row := range repo.db.mark.table {
		if _, ok := ids[key.StudentID]; ok && key.SubjectID == subjectID && key.ExamTypeID == examTypeID {
			rows = append(rows, row)
		}
	}
	return sorted(rows), nil
}

func (repo *markRepository) DeleteMark(key mark.Key) (mark.Mark, error) {
	repo.db.mark.mutex.Lock()
	defer repo.db.mark.mutex.Unlock()

	row, ok := repo.db.mark.table[key]
	if !ok {
		return mark.Mark{}, mark.ErrNotFound
	}
	delete(repo.db.mark.table, key)
	return row.mark, nil
}
