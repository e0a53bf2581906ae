package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ispdesk/internal/domain/technician"
	"ispdesk/internal/domain/ticket"
	vo "ispdesk/internal/domain/ticket/valueobjects"
	apperrors "ispdesk/internal/shared/errors"
	"ispdesk/internal/shared/id"
	"ispdesk/internal/shared/testutil"
)

func singleTicketRepo(tk *ticket.Ticket) *mockTicketRepository {
	return &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id string) (*ticket.Ticket, error) {
			if id == tk.ID() {
				return tk, nil
			}
			return nil, nil
		},
	}
}

func TestListTicketsUseCase_Search(t *testing.T) {
	repo := &mockTicketRepository{
		ListFunc: func(ctx context.Context) ([]*ticket.Ticket, error) {
			return []*ticket.Ticket{
				newTestTicket(t, id.New(), "T-00002", "No internet", "Ana Torres", vo.StatusOpen),
				newTestTicket(t, id.New(), "T-00001", "Slow speed", "Luis Quispe", vo.StatusClosed),
			}, nil
		},
	}
	useCase := NewListTicketsUseCase(repo, testutil.NewMockLogger())

	tests := []struct {
		term string
		want []string
	}{
		{"", []string{"T-00002", "T-00001"}},
		{"t-00001", []string{"T-00001"}},
		{"INTERNET", []string{"T-00002"}},
		{"quispe", []string{"T-00001"}},
	}

	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			result, err := useCase.Execute(context.Background(), ListTicketsQuery{Search: tt.term})
			require.NoError(t, err)

			got := make([]string, 0, len(result.Items))
			for _, item := range result.Items {
				got = append(got, item.TicketNumber)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUpdateTicketStatusUseCase_ResolvedAtLifecycle(t *testing.T) {
	tk := newTestTicket(t, id.New(), "T-00010", "No internet", "Ana Torres", vo.StatusOpen)
	var persisted []string
	repo := singleTicketRepo(tk)
	repo.UpdateStatusFunc = func(ctx context.Context, t *ticket.Ticket) error {
		persisted = append(persisted, t.Status().String())
		return nil
	}
	useCase := NewUpdateTicketStatusUseCase(repo, testutil.NewMockLogger())

	resolved, err := useCase.Execute(context.Background(), UpdateTicketStatusCommand{TicketID: tk.ID(), Status: "resolved"})
	require.NoError(t, err)
	require.NotNil(t, resolved.ResolvedAt)
	stamp := *resolved.ResolvedAt

	closed, err := useCase.Execute(context.Background(), UpdateTicketStatusCommand{TicketID: tk.ID(), Status: "closed"})
	require.NoError(t, err)
	require.NotNil(t, closed.ResolvedAt)
	assert.True(t, stamp.Equal(*closed.ResolvedAt))

	reopened, err := useCase.Execute(context.Background(), UpdateTicketStatusCommand{TicketID: tk.ID(), Status: "in_progress"})
	require.NoError(t, err)
	assert.Nil(t, reopened.ResolvedAt)

	assert.Equal(t, []string{"resolved", "closed", "in_progress"}, persisted)
}

func TestUpdateTicketStatusUseCase_Errors(t *testing.T) {
	tk := newTestTicket(t, id.New(), "T-00010", "No internet", "Ana Torres", vo.StatusOpen)
	useCase := NewUpdateTicketStatusUseCase(singleTicketRepo(tk), testutil.NewMockLogger())

	_, err := useCase.Execute(context.Background(), UpdateTicketStatusCommand{TicketID: tk.ID(), Status: "escalated"})
	assert.True(t, apperrors.IsValidationError(err))

	_, err = useCase.Execute(context.Background(), UpdateTicketStatusCommand{TicketID: id.New(), Status: "closed"})
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestAssignTechnicianUseCase(t *testing.T) {
	tk := newTestTicket(t, id.New(), "T-00011", "No internet", "Ana Torres", vo.StatusOpen)
	activeID := id.New()
	onLeaveID := id.New()
	techRepo := &mockTechnicianRepository{
		GetByIDFunc: func(ctx context.Context, tid string) (*technician.Technician, error) {
			switch tid {
			case activeID:
				return newTestTechnician(t, tid, technician.StatusActive), nil
			case onLeaveID:
				return newTestTechnician(t, tid, technician.StatusOnLeave), nil
			}
			return nil, nil
		},
	}
	var updates int
	repo := singleTicketRepo(tk)
	repo.UpdateTechnicianFunc = func(ctx context.Context, t *ticket.Ticket) error {
		updates++
		return nil
	}
	useCase := NewAssignTechnicianUseCase(repo, techRepo, testutil.NewMockLogger())

	result, err := useCase.Execute(context.Background(), AssignTechnicianCommand{TicketID: tk.ID(), TechnicianID: activeID})
	require.NoError(t, err)
	require.NotNil(t, result.TechnicianID)
	assert.Equal(t, activeID, *result.TechnicianID)

	_, err = useCase.Execute(context.Background(), AssignTechnicianCommand{TicketID: tk.ID(), TechnicianID: onLeaveID})
	assert.True(t, apperrors.IsValidationError(err))

	_, err = useCase.Execute(context.Background(), AssignTechnicianCommand{TicketID: tk.ID(), TechnicianID: id.New()})
	assert.True(t, apperrors.IsNotFoundError(err))

	unassigned, err := useCase.Execute(context.Background(), AssignTechnicianCommand{TicketID: tk.ID()})
	require.NoError(t, err)
	assert.Nil(t, unassigned.TechnicianID)

	assert.Equal(t, 2, updates)
}

func TestCommentUseCases(t *testing.T) {
	tk := newTestTicket(t, id.New(), "T-00012", "No internet", "Ana Torres", vo.StatusOpen)
	var stored []*ticket.Comment
	commentRepo := &mockCommentRepository{
		CreateFunc: func(ctx context.Context, c *ticket.Comment) error {
			stored = append(stored, c)
			return nil
		},
		ListByTicketIDFunc: func(ctx context.Context, ticketID string) ([]*ticket.Comment, error) {
			return stored, nil
		},
	}
	addComment := NewAddCommentUseCase(singleTicketRepo(tk), commentRepo, testutil.NewMockLogger())
	listComments := NewListCommentsUseCase(singleTicketRepo(tk), commentRepo, testutil.NewMockLogger())

	added, err := addComment.Execute(context.Background(), AddCommentCommand{TicketID: tk.ID(), Comment: "Visited, replaced ONT", CreatedBy: "Pedro"})
	require.NoError(t, err)
	assert.Equal(t, tk.ID(), added.TicketID)
	assert.WithinDuration(t, time.Now(), added.CreatedAt, time.Minute)

	_, err = addComment.Execute(context.Background(), AddCommentCommand{TicketID: tk.ID(), CreatedBy: "Pedro"})
	assert.True(t, apperrors.IsValidationError(err))

	_, err = addComment.Execute(context.Background(), AddCommentCommand{TicketID: id.New(), Comment: "hello", CreatedBy: "Pedro"})
	assert.True(t, apperrors.IsNotFoundError(err))

	comments, err := listComments.Execute(context.Background(), tk.ID())
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "Visited, replaced ONT", comments[0].Comment)
}
