package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/usecase"
)

func TestExportTasks_JSON(t *testing.T) {
	f := newFixture(t)
	a := f.add(t, "A")
	b := f.add(t, "B")
	f.complete(t, a.ID)
	uc := usecase.NewExportTasks(f.store)

	out, err := uc.Execute(context.Background(), usecase.ExportTasksInput{Format: usecase.FormatJSON})
	require.NoError(t, err)
	assert.Equal(t, 2, out.Count)

	var got domain.TaskList
	require.NoError(t, json.Unmarshal(out.Data, &got))
	assert.Equal(t, domain.TaskList{{ID: a.ID, Text: "A", Completed: true}, b}, got)
}

func TestExportTasks_YAMLFiltered(t *testing.T) {
	f := newFixture(t)
	a := f.add(t, "A")
	f.add(t, "B")
	f.complete(t, a.ID)
	uc := usecase.NewExportTasks(f.store)

	out, err := uc.Execute(context.Background(), usecase.ExportTasksInput{
		Filter: domain.FilterCompleted,
		Format: usecase.FormatYAML,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, out.Count)

	var got []domain.Task
	require.NoError(t, yaml.Unmarshal(out.Data, &got))
	assert.Equal(t, []domain.Task{{ID: a.ID, Text: "A", Completed: true}}, got)
}

func TestExportTasks_EmptyListIsArray(t *testing.T) {
	f := newFixture(t)
	uc := usecase.NewExportTasks(f.store)

	out, err := uc.Execute(context.Background(), usecase.ExportTasksInput{})
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(out.Data))
}

func TestExportTasks_UnknownFormat(t *testing.T) {
	f := newFixture(t)
	uc := usecase.NewExportTasks(f.store)

	_, err := uc.Execute(context.Background(), usecase.ExportTasksInput{Format: "xml"})
	assert.ErrorIs(t, err, domain.ErrUnknownFormat)
}

func TestImportTasks_JSON(t *testing.T) {
	f := newFixture(t)
	existing := f.add(t, "existing")
	uc := usecase.NewImportTasks(f.store, f.logger)

	data := []byte(`[
		{"id": 1, "text": "A", "completed": true},
		{"id": 2, "text": "  ", "completed": false},
		{"id": 3, "text": "B"}
	]`)
	out, err := uc.Execute(context.Background(), usecase.ImportTasksInput{Data: data, Format: usecase.FormatJSON})
	require.NoError(t, err)

	assert.Equal(t, 2, out.Created)
	assert.Equal(t, 1, out.Skipped)
	require.Len(t, out.Tasks, 3)
	assert.Equal(t, existing, out.Tasks[0])
	assert.Equal(t, "A", out.Tasks[1].Text)
	assert.True(t, out.Tasks[1].Completed)
	assert.Equal(t, "B", out.Tasks[2].Text)
	assert.False(t, out.Tasks[2].Completed)
	assert.Greater(t, out.Tasks[1].ID, existing.ID, "ids are reassigned")
	assert.Contains(t, f.logger.Messages(), "INFO task: imported 2 tasks (1 skipped)")
}

func TestImportTasks_YAML(t *testing.T) {
	f := newFixture(t)
	uc := usecase.NewImportTasks(f.store, nil)

	data := []byte("- text: Buy milk\n- text: Walk dog\n  completed: true\n")
	out, err := uc.Execute(context.Background(), usecase.ImportTasksInput{Data: data, Format: usecase.FormatYAML})
	require.NoError(t, err)

	assert.Equal(t, 2, out.Created)
	assert.Equal(t, 1, f.store.ActiveCount())
}

func TestImportTasks_RoundTripsExport(t *testing.T) {
	src := newFixture(t)
	a := src.add(t, "A")
	src.add(t, "B")
	src.complete(t, a.ID)

	exported, err := usecase.NewExportTasks(src.store).Execute(context.Background(),
		usecase.ExportTasksInput{Format: usecase.FormatYAML})
	require.NoError(t, err)

	dst := newFixture(t)
	_, err = usecase.NewImportTasks(dst.store, nil).Execute(context.Background(),
		usecase.ImportTasksInput{Data: exported.Data, Format: usecase.FormatYAML})
	require.NoError(t, err)

	assert.Equal(t, len(src.store.Query(domain.FilterCompleted)), len(dst.store.Query(domain.FilterCompleted)))
	assert.Equal(t, src.store.ActiveCount(), dst.store.ActiveCount())
}

func TestImportTasks_InvalidData(t *testing.T) {
	f := newFixture(t)
	uc := usecase.NewImportTasks(f.store, nil)

	_, err := uc.Execute(context.Background(), usecase.ImportTasksInput{Data: []byte("{"), Format: usecase.FormatJSON})
	assert.Error(t, err)
	assert.Empty(t, f.store.Query(domain.FilterAll))
}

func TestImportTasks_WriteErrorStops(t *testing.T) {
	f := newFixture(t)
	f.kv.SetErr = errors.New("read-only")
	uc := usecase.NewImportTasks(f.store, nil)

	_, err := uc.Execute(context.Background(), usecase.ImportTasksInput{Data: []byte(`[{"text":"A"}]`)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read-only")
}
