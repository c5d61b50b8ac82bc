package inmemdb

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/trezcool/matokeo/core/mark"
	"github.com/trezcool/matokeo/core/student"
)

var (
	maleFirstNames = []string{
		"Aarav", "Vivaan", "Aditya", "Arjun", "Sai", "Reyansh", "Atharv", "Aryan", "Krish", "Rudra",
		"Ishaan", "Shaurya", "Dhruv", "Vihaan", "Karthik", "Arnav", "Kabir", "Yash", "Pranav", "Rohan",
	}
	femaleFirstNames = []string{
		"Saanvi", "Diya", "Aadhya", "Kiara", "Anika", "Prisha", "Anaya", "Myra", "Sara", "Ira",
		"Navya", "Riya", "Aarohi", "Kavya", "Meera", "Tara", "Nisha", "Pooja", "Sneha", "Isha",
	}
	lastNames = []string{
		"Sharma", "Verma", "Gupta", "Singh", "Kumar", "Patel", "Jain", "Agarwal", "Bansal", "Mittal",
		"Joshi", "Mehta", "Reddy", "Nair", "Iyer", "Chopra", "Malhotra", "Kapoor", "Saxena", "Rao",
	}
	addresses = []string{
		"12 MG Road, Bengaluru", "45 Park Street, Kolkata", "7 Linking Road, Mumbai",
		"22 Civil Lines, Jaipur", "9 Anna Salai, Chennai", "31 Sector 15, Noida",
	}
	bloodGroups = []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}
)

type SeedOptions struct {
	RandSeed           int64
	StudentsPerSection int
	Today              time.Time
}

// Seed fills an empty DB with demo students and their marks for every exam type.
// The same options always produce the same data.
func Seed(db *DB, opts SeedOptions) {
	if opts.StudentsPerSection <= 0 {
		opts.StudentsPerSection = 50
	}
	if opts.Today.IsZero() {
		opts.Today = time.Now()
	}
	rnd := rand.New(rand.NewSource(opts.RandSeed))
	students := seedStudents(rnd, db.catalog, opts)

	db.student.mutex.Lock()
	defer db.student.mutex.Unlock()
	db.mark.mutex.Lock()
	defer db.mark.mutex.Unlock()

	for i := range students {
		s := students[i]
		db.student.table[s.ID] = &s
	}
	for _, m := range seedMarks(rnd, db.catalog, students, opts.Today) {
		db.mark.seq++
		db.mark.table[m.Key()] = &markRow{seq: db.mark.seq, mark: m}
	}
}

func pick(rnd *rand.Rand, list []string) string {
	return list[rnd.Intn(len(list))]
}

func seedStudents(rnd *rand.Rand, cat *catalogTable, opts SeedOptions) []student.Student {
	students := make([]student.Student, 0, len(cat.classSections)*opts.StudentsPerSection)
	rollNo := 1
	for _, cs := range cat.classSections {
		class, _ := strconv.Atoi(cs.Class)
		for i := 0; i < opts.StudentsPerSection; i++ {
			isGirl := rnd.Float64() < 0.45
			firstName := pick(rnd, maleFirstNames)
			gender := student.GenderMale
			if isGirl {
				firstName = pick(rnd, femaleFirstNames)
				gender = student.GenderFemale
			}
			lastName := pick(rnd, lastNames)
			birthYear := opts.Today.Year() - (class + 5)

			students = append(students, student.Student{
				ID:            fmt.Sprintf("student-%d", rollNo),
				RollNo:        fmt.Sprintf("%04d", rollNo),
				Name:          firstName + " " + lastName,
				FatherName:    pick(rnd, maleFirstNames) + " " + lastName,
				MotherName:    pick(rnd, femaleFirstNames) + " " + lastName,
				Class:         cs.Class,
				Section:       cs.Section,
				DateOfBirth:   fmt.Sprintf("%d-%02d-%02d", birthYear, rnd.Intn(12)+1, rnd.Intn(28)+1),
				Address:       pick(rnd, addresses),
				PhoneNumber:   fmt.Sprintf("+91 %d", rnd.Intn(900000000)+100000000),
				AdmissionDate: fmt.Sprintf("%d-04-01", birthYear+class-1),
				Gender:        gender,
				BloodGroup:    pick(rnd, bloodGroups),
				Email:         strings.ToLower(firstName+"."+lastName) + "@parent.com",
			})
			rollNo++
		}
	}
	return students
}

// randomMarks follows a rough class distribution: 10% poor, 20% below average, 40% average, 20% good, 10% excellent.
func randomMarks(rnd *rand.Rand, maxMarks float64) float64 {
	var low, spread float64
	switch p := rnd.Float64(); {
	case p < 0.1:
		low, spread = 0.3, 0.15
	case p < 0.3:
		low, spread = 0.45, 0.15
	case p < 0.7:
		low, spread = 0.6, 0.2
	case p < 0.9:
		low, spread = 0.8, 0.15
	default:
		low, spread = 0.9, 0.1
	}
	return float64(int(maxMarks * (low + rnd.Float64()*spread)))
}

func seedMarks(rnd *rand.Rand, cat *catalogTable, students []student.Student, today time.Time) []mark.Mark {
	entryDate := today.Format(mark.EntryDateLayout)
	marks := make([]mark.Mark, 0, len(students)*len(cat.subjects)*len(cat.examTypes))
	markID := 1

	for _, s := range students {
		// all students take the core subjects; 70% computer science, 50% drawing, 30% physical education
		subjectIDs := make([]string, 0, len(cat.subjects))
		for _, sub := range cat.subjects {
			if !sub.IsOptional {
				subjectIDs = append(subjectIDs, sub.ID)
			}
		}
		if rnd.Float64() < 0.7 {
			subjectIDs = append(subjectIDs, "computer")
		}
		if rnd.Float64() < 0.5 {
			subjectIDs = append(subjectIDs, "drawing")
		}
		if rnd.Float64() < 0.3 {
			subjectIDs = append(subjectIDs, "physical")
		}

		for _, subjectID := range subjectIDs {
			for _, exam := range cat.examTypes {
				obtained := randomMarks(rnd, exam.MaxMarks)
				grade, _ := mark.Grade(obtained, exam.MaxMarks)
				marks = append(marks, mark.Mark{
					ID:            fmt.Sprintf("mark-%d", markID),
					StudentID:     s.ID,
					SubjectID:     subjectID,
					ExamTypeID:    exam.ID,
					MarksObtained: obtained,
					MaxMarks:      exam.MaxMarks,
					Grade:         grade,
					EntryDate:     entryDate,
				})
				markID++
			}
		}
	}
	return marks
}
