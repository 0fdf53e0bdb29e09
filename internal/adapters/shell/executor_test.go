package shell_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/swan/internal/adapters/shell"
	"go.trai.ch/swan/internal/core/domain"
	"go.trai.ch/swan/internal/core/ports"
	"go.trai.ch/swan/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func TestExecutor_Execute_MultiLineOutput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info("line1").Times(1)
	mockLogger.EXPECT().Info("line2").Times(1)

	executor := shell.NewExecutor(mockLogger)
	tmpDir := t.TempDir()

	node := &domain.TaskNode{
		ID:         domain.NewInternedString("test-node"),
		Kind:       domain.KindProcess,
		Command:    []string{"sh", "-c", "echo line1; echo line2"},
		WorkingDir: tmpDir,
	}

	err := executor.Execute(context.Background(), node)
	require.NoError(t, err)
}

func TestExecutor_Execute_EmptyCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	executor := shell.NewExecutor(mocks.NewMockLogger(ctrl))

	node := &domain.TaskNode{ID: domain.NewInternedString("noop")}
	require.NoError(t, executor.Execute(context.Background(), node))
}

func TestExecutor_Execute_NonZeroExit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Error(gomock.Any()).AnyTimes()

	executor := shell.NewExecutor(mockLogger)

	node := &domain.TaskNode{
		ID:         domain.NewInternedString("failing"),
		Kind:       domain.KindProcess,
		Command:    []string{"sh", "-c", "exit 3"},
		WorkingDir: t.TempDir(),
	}

	err := executor.Execute(context.Background(), node)
	require.Error(t, err)

	var zErr *zerr.Error
	require.True(t, errors.As(err, &zErr))
	require.Equal(t, 3, zErr.Metadata()["exit_code"])
}

func TestExecutor_Execute_NodeEnvironmentWins(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info("from-node").Times(1)

	t.Setenv("SWAN_TEST_VALUE", "from-system")

	executor := shell.NewExecutor(mockLogger)

	node := &domain.TaskNode{
		ID:         domain.NewInternedString("env-node"),
		Kind:       domain.KindProcess,
		Command:    []string{"sh", "-c", "echo $SWAN_TEST_VALUE"},
		WorkingDir: t.TempDir(),
		Env:        map[string]string{"SWAN_TEST_VALUE": "from-node"},
	}

	require.NoError(t, executor.Execute(context.Background(), node))
}

type bufferVertex struct {
	stdout bytes.Buffer
	stderr bytes.Buffer
}

func (v *bufferVertex) Stdout() io.Writer { return &v.stdout }
func (v *bufferVertex) Stderr() io.Writer { return &v.stderr }
func (v *bufferVertex) Cached()           {}
func (v *bufferVertex) Complete(_ error)  {}

func TestExecutor_Execute_RoutesOutputToVertex(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Error(gomock.Any()).AnyTimes()

	executor := shell.NewExecutor(mockLogger)

	vertex := &bufferVertex{}
	ctx := ports.ContextWithVertex(context.Background(), vertex)

	node := &domain.TaskNode{
		ID:         domain.NewInternedString("traced"),
		Kind:       domain.KindProcess,
		Command:    []string{"sh", "-c", "echo compiled; echo warning >&2"},
		WorkingDir: t.TempDir(),
	}

	require.NoError(t, executor.Execute(ctx, node))
	assert.Equal(t, "compiled\n", vertex.stdout.String())
	assert.Equal(t, "warning\n", vertex.stderr.String())
}
