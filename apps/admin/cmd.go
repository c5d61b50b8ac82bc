package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/go-playground/validator/v10"
	errs "github.com/pkg/errors"

	"github.com/trezcool/matokeo/core/marksheet"
	exportsvc "github.com/trezcool/matokeo/services/export"
)

var (
	createFileFunc = func(name string) (io.WriteCloser, error) { return os.Create(name) } // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	validate     *validator.Validate
	marksheetSvc *marksheet.Service
	schoolName   string
	out          io.Writer
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  classresult -class CLASS -section SECTION -exam EXAM_TYPE_ID -year ACADEMIC_YEAR [-out FILE.xlsx]")
	fmt.Fprintln(cli.out, "      print the ranked result of a class section, or write it as a workbook")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	classResultCmd := flag.NewFlagSet("classresult", flag.ContinueOnError)
	classResultCmd.SetOutput(cli.out)
	classResultClass := classResultCmd.String("class", "", "The class name, e.g. 10.")
	classResultSection := classResultCmd.String("section", "", "The section, e.g. A.")
	classResultExam := classResultCmd.String("exam", "", "The exam type ID, e.g. half-yearly.")
	classResultYear := classResultCmd.String("year", "", "The academic year, e.g. 2024-25.")
	classResultOut := classResultCmd.String("out", "", "Write an .xlsx workbook to this file instead of printing.")

	switch args[1] {
	case "classresult":
		if err := classResultCmd.Parse(args[2:]); err != nil {
			return errHelp
		}
		if *classResultClass == "" || *classResultSection == "" || *classResultExam == "" || *classResultYear == "" {
			classResultCmd.Usage()
			return errHelp
		}
		req := marksheet.ClassRequest{
			ClassName:    *classResultClass,
			Section:      *classResultSection,
			ExamTypeID:   *classResultExam,
			AcademicYear: *classResultYear,
		}
		return cli.classResult(req, *classResultOut)
	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) classResult(req marksheet.ClassRequest, outFile string) error {
	if err := req.Validate(cli.validate); err != nil {
		return err
	}

	res, err := cli.marksheetSvc.GenerateClass(req)
	if err != nil {
		return err
	}

	if outFile != "" {
		f, err := createFileFunc(outFile)
		if err != nil {
			return errs.Wrap(err, "creating workbook file")
		}
		if err = exportsvc.WriteClassResult(f, cli.schoolName, res); err != nil {
			_ = f.Close()
			return err
		}
		if err = f.Close(); err != nil {
			return errs.Wrap(err, "closing workbook file")
		}
		fmt.Fprintf(cli.out, "%d marksheets written to %s\n", len(res.Marksheets), outFile)
		return nil
	}

	cli.printClassResult(res)
	return nil
}

func (cli *commandLine) printClassResult(res marksheet.ClassResult) {
	fmt.Fprintf(cli.out, "%s - Class %s-%s - %s %s\n", cli.schoolName, res.Class, res.Section, res.ExamType, res.AcademicYear)
	if res.ClassTeacher != "" {
		fmt.Fprintf(cli.out, "Class teacher: %s\n", res.ClassTeacher)
	}
	fmt.Fprintln(cli.out)

	tw := tabwriter.NewWriter(cli.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RANK\tROLL NO\tNAME\tTOTAL\tPERCENTAGE\tGRADE\tRESULT")
	for _, r := range res.Roster() {
		result := "Fail"
		if r.Pass {
			result = "Pass"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%v/%v\t%.2f\t%s\t%s\n",
			r.Rank, r.RollNo, r.StudentName, r.TotalMarks, r.TotalMaxMarks, r.Percentage, r.OverallGrade, result)
	}
	_ = tw.Flush()

	sum := res.Summary
	fmt.Fprintf(cli.out, "\nstudents: %d, appeared: %d, passed: %d, failed: %d\n", sum.Students, sum.Appeared, sum.Passed, sum.Failed)
	fmt.Fprintf(cli.out, "pass: %.2f%%, average: %.2f%%, highest: %.2f%%, lowest: %.2f%%\n",
		sum.PassPercentage, sum.AveragePercentage, sum.HighestPercentage, sum.LowestPercentage)
}
