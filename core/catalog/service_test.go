package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/matokeo/core/catalog"
	"github.com/trezcool/matokeo/tests"
)

func TestService(t *testing.T) {
	svc := testutil.NewEnv().CatalogSvc

	names, err := svc.SubjectNames()
	require.NoError(t, err)
	assert.Len(t, names, 8)
	assert.Equal(t, "Social Studies", names["social"])

	exam, err := svc.ExamType(" final ")
	require.NoError(t, err)
	assert.Equal(t, catalog.ExamType{ID: "final", Name: "Final Examination", Weight: 40, MaxMarks: 100}, exam)

	_, err = svc.Subject("lol")
	assert.Equal(t, catalog.ErrSubjectNotFound, err)

	cs, err := svc.ClassSection("6", "A")
	require.NoError(t, err)
	assert.Equal(t, "Mrs. Sunita Sharma", cs.ClassTeacher)
}
