package commands_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTopUpWalletCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	buyerID := kernel.NewUUID()
	amount := mustMoney(t, 250.00)

	cmd, err := commands.NewTopUpWalletCommand(buyerID, amount)
	require.NoError(t, err)

	walletRepo := new(MockWalletRepository)
	uow := new(MockWalletUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("WalletRepository").Return(walletRepo).Once(),
		walletRepo.On("Credit", mock.Anything, buyerID, amount).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockWalletUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewTopUpWalletCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	walletRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestTopUpWalletCommand_ZeroAmount(t *testing.T) {
	_, err := commands.NewTopUpWalletCommand(kernel.NewUUID(), mustMoney(t, 0))
	require.Error(t, err)
}

func TestTopUpWalletCommandHandler_Handle_CreditError(t *testing.T) {
	ctx := t.Context()
	buyerID := kernel.NewUUID()
	amount := mustMoney(t, 50.00)

	cmd, err := commands.NewTopUpWalletCommand(buyerID, amount)
	require.NoError(t, err)

	walletRepo := new(MockWalletRepository)
	uow := new(MockWalletUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("WalletRepository").Return(walletRepo).Once(),
		walletRepo.On("Credit", mock.Anything, buyerID, amount).Return(errBoom).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockWalletUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewTopUpWalletCommandHandler(factory)
	require.ErrorIs(t, h.Handle(ctx, cmd), errBoom)
	uow.AssertExpectations(t)
}
