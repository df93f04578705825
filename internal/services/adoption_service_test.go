package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"

	"pawmart/internal/domain/adoption"
	"pawmart/internal/domain/pet"
	"pawmart/internal/repository"
	mock_repository "pawmart/internal/repository/mocks"
	pawmart_errors "pawmart/pkg/errors"
)

func TestCreateApplication(t *testing.T) {
	userID := uuid.New()
	petID := uuid.New()

	adoptable := func() pet.Pet {
		p := petFixtures(petID)[0]
		p.IsForAdoption = true
		return p
	}

	t.Run("files a pending claim without reserving the pet", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		apps := mock_repository.NewMockAdoptionRepository(ctrl)
		pets := mock_repository.NewMockPetRepository(ctrl)

		pets.EXPECT().GetByID(gomock.Any(), gomock.Any(), petID).Return(adoptable(), nil)
		apps.EXPECT().HasActiveForUserAndPet(gomock.Any(), gomock.Any(), userID, petID).Return(false, nil)
		apps.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ repository.DBTX, a *adoption.Application) error {
				a.ID = uuid.New()
				return nil
			})

		svc := NewAdoptionService(stubTxRunner{}, apps, pets, nil, nil)
		got, err := svc.CreateApplication(context.Background(), userID, petID, nil, "we have a garden")
		if err != nil {
			t.Fatalf("CreateApplication: %v", err)
		}
		if got.Status != adoption.StatusPending {
			t.Fatalf("status = %s, want pending", got.Status)
		}
		if got.ID == uuid.Nil {
			t.Fatal("application ID not assigned")
		}
	})

	t.Run("pet not available", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		apps := mock_repository.NewMockAdoptionRepository(ctrl)
		pets := mock_repository.NewMockPetRepository(ctrl)

		reserved := adoptable()
		reserved.Status = pet.StatusPending
		pets.EXPECT().GetByID(gomock.Any(), gomock.Any(), petID).Return(reserved, nil)

		svc := NewAdoptionService(stubTxRunner{}, apps, pets, nil, nil)
		if _, err := svc.CreateApplication(context.Background(), userID, petID, nil, ""); !errors.Is(err, pawmart_errors.ErrNotAvailable) {
			t.Fatalf("err = %v, want ErrNotAvailable", err)
		}
	})

	t.Run("pet not flagged for adoption", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		apps := mock_repository.NewMockAdoptionRepository(ctrl)
		pets := mock_repository.NewMockPetRepository(ctrl)

		pets.EXPECT().GetByID(gomock.Any(), gomock.Any(), petID).Return(petFixtures(petID)[0], nil)

		svc := NewAdoptionService(stubTxRunner{}, apps, pets, nil, nil)
		if _, err := svc.CreateApplication(context.Background(), userID, petID, nil, ""); !errors.Is(err, pawmart_errors.ErrNotForAdoption) {
			t.Fatalf("err = %v, want ErrNotForAdoption", err)
		}
	})

	t.Run("second active claim by the same user is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		apps := mock_repository.NewMockAdoptionRepository(ctrl)
		pets := mock_repository.NewMockPetRepository(ctrl)

		pets.EXPECT().GetByID(gomock.Any(), gomock.Any(), petID).Return(adoptable(), nil)
		apps.EXPECT().HasActiveForUserAndPet(gomock.Any(), gomock.Any(), userID, petID).Return(true, nil)

		svc := NewAdoptionService(stubTxRunner{}, apps, pets, nil, nil)
		if _, err := svc.CreateApplication(context.Background(), userID, petID, nil, ""); !errors.Is(err, pawmart_errors.ErrAlreadyExists) {
			t.Fatalf("err = %v, want ErrAlreadyExists", err)
		}
	})
}

func TestDecide(t *testing.T) {
	petID := uuid.New()
	applicant := uuid.New()
	appID := uuid.New()

	pendingApp := func() adoption.Application {
		return adoption.Application{ID: appID, UserID: applicant, PetID: petID, Status: adoption.StatusPending}
	}

	t.Run("rejects non-decision statuses", func(t *testing.T) {
		svc := NewAdoptionService(stubTxRunner{err: errors.New("must not run")}, nil, nil, nil, nil)
		for _, s := range []adoption.Status{adoption.StatusPending, adoption.StatusCancelled, "nonsense"} {
			if _, err := svc.Decide(context.Background(), appID, s, ""); !errors.Is(err, pawmart_errors.ErrInvalidInput) {
				t.Fatalf("%s: err = %v, want ErrInvalidInput", s, err)
			}
		}
	})

	t.Run("approval claims the pet and cascade-rejects competitors", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		apps := mock_repository.NewMockAdoptionRepository(ctrl)
		pets := mock_repository.NewMockPetRepository(ctrl)

		apps.EXPECT().GetByID(gomock.Any(), gomock.Any(), appID).Return(pendingApp(), nil)
		apps.EXPECT().SetDecision(gomock.Any(), gomock.Any(), appID, adoption.StatusApproved, "great home", gomock.Any()).Return(true, nil)
		pets.EXPECT().MarkAdopted(gomock.Any(), gomock.Any(), petID, applicant).Return(true, nil)
		apps.EXPECT().RejectOtherPending(gomock.Any(), gomock.Any(), petID, appID, adoption.CascadeRejectionNote, gomock.Any()).Return(int64(2), nil)

		svc := NewAdoptionService(stubTxRunner{}, apps, pets, nil, nil)
		got, err := svc.Decide(context.Background(), appID, adoption.StatusApproved, "great home")
		if err != nil {
			t.Fatalf("Decide: %v", err)
		}
		if got.Status != adoption.StatusApproved || got.DecidedAt == nil {
			t.Fatalf("unexpected decided application: %+v", got)
		}
	})

	t.Run("already-decided application conflicts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		apps := mock_repository.NewMockAdoptionRepository(ctrl)
		pets := mock_repository.NewMockPetRepository(ctrl)

		apps.EXPECT().GetByID(gomock.Any(), gomock.Any(), appID).Return(pendingApp(), nil)
		apps.EXPECT().SetDecision(gomock.Any(), gomock.Any(), appID, adoption.StatusApproved, "", gomock.Any()).Return(false, nil)

		svc := NewAdoptionService(stubTxRunner{}, apps, pets, nil, nil)
		if _, err := svc.Decide(context.Background(), appID, adoption.StatusApproved, ""); !errors.Is(err, pawmart_errors.ErrConflict) {
			t.Fatalf("err = %v, want ErrConflict", err)
		}
	})

	t.Run("approval loses the pet guard", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		apps := mock_repository.NewMockAdoptionRepository(ctrl)
		pets := mock_repository.NewMockPetRepository(ctrl)

		apps.EXPECT().GetByID(gomock.Any(), gomock.Any(), appID).Return(pendingApp(), nil)
		apps.EXPECT().SetDecision(gomock.Any(), gomock.Any(), appID, adoption.StatusApproved, "", gomock.Any()).Return(true, nil)
		pets.EXPECT().MarkAdopted(gomock.Any(), gomock.Any(), petID, applicant).Return(false, nil)

		svc := NewAdoptionService(stubTxRunner{}, apps, pets, nil, nil)
		if _, err := svc.Decide(context.Background(), appID, adoption.StatusApproved, ""); !errors.Is(err, pawmart_errors.ErrConflict) {
			t.Fatalf("err = %v, want ErrConflict", err)
		}
	})

	t.Run("rejecting the last pending application frees the pet", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		apps := mock_repository.NewMockAdoptionRepository(ctrl)
		pets := mock_repository.NewMockPetRepository(ctrl)

		apps.EXPECT().GetByID(gomock.Any(), gomock.Any(), appID).Return(pendingApp(), nil)
		apps.EXPECT().SetDecision(gomock.Any(), gomock.Any(), appID, adoption.StatusRejected, "no fenced yard", gomock.Any()).Return(true, nil)
		apps.EXPECT().CountPendingForPet(gomock.Any(), gomock.Any(), petID, appID).Return(int64(0), nil)
		pets.EXPECT().RevertUnlessAdopted(gomock.Any(), gomock.Any(), petID).Return(nil)

		svc := NewAdoptionService(stubTxRunner{}, apps, pets, nil, nil)
		got, err := svc.Decide(context.Background(), appID, adoption.StatusRejected, "no fenced yard")
		if err != nil {
			t.Fatalf("Decide: %v", err)
		}
		if got.AdminNotes != "no fenced yard" {
			t.Fatalf("notes = %q", got.AdminNotes)
		}
	})

	t.Run("rejection leaves the pet alone while others are still pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		apps := mock_repository.NewMockAdoptionRepository(ctrl)
		pets := mock_repository.NewMockPetRepository(ctrl)

		apps.EXPECT().GetByID(gomock.Any(), gomock.Any(), appID).Return(pendingApp(), nil)
		apps.EXPECT().SetDecision(gomock.Any(), gomock.Any(), appID, adoption.StatusRejected, "", gomock.Any()).Return(true, nil)
		apps.EXPECT().CountPendingForPet(gomock.Any(), gomock.Any(), petID, appID).Return(int64(3), nil)

		svc := NewAdoptionService(stubTxRunner{}, apps, pets, nil, nil)
		if _, err := svc.Decide(context.Background(), appID, adoption.StatusRejected, ""); err != nil {
			t.Fatalf("Decide: %v", err)
		}
	})
}
