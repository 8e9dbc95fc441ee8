package payment

import (
	"context"
	"errors"
	"testing"

	"kasirpos/internal/money"
	"kasirpos/internal/order"
	"kasirpos/internal/product"
	"kasirpos/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Append(ctx context.Context, tx *CompletedTransaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockRepository) ListBySession(ctx context.Context, sessionID string) ([]CompletedTransaction, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]CompletedTransaction), args.Error(1)
}

// MockEmitter is a mock receipt emitter
type MockEmitter struct {
	mock.Mock
}

func (m *MockEmitter) Emit(ctx context.Context, tx *CompletedTransaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func testOrder(t *testing.T) *order.Order {
	t.Helper()
	o := order.New()
	require.NoError(t, o.AddOrIncrement(product.Product{SKU: "A", Name: "Nasi Goreng", UnitPrice: 1000}, 2))
	require.NoError(t, o.AddOrIncrement(product.Product{SKU: "B", Name: "Es Teh", UnitPrice: 500}, 1))
	discount := money.Amount(100)
	require.NoError(t, o.UpdateLine(1, order.LineUpdate{Discount: &discount}))
	// grand total: 2*1000 + (500-100) = 2400
	return o
}

func newTestService(repo Repository, emitter ReceiptEmitter) (Service, *session.TerminalContext) {
	tctx := session.NewTerminalContext(session.New("Budi"), "Toko Uji")
	return NewService(repo, emitter, tctx), tctx
}

func TestService_Finalize_Cash(t *testing.T) {
	t.Run("Overpayment yields exact change", func(t *testing.T) {
		repo := new(MockRepository)
		emitter := new(MockEmitter)
		svc, tctx := newTestService(repo, emitter)
		o := testOrder(t)

		repo.On("Append", mock.Anything, mock.Anything).Return(nil).Once()
		emitter.On("Emit", mock.Anything, mock.Anything).Return(nil).Once()

		tx, err := svc.Finalize(context.Background(), o, FinalizeParams{
			Method:         MethodCash,
			AmountTendered: 3000,
		})

		require.NoError(t, err)
		assert.EqualValues(t, 2400, tx.TotalAmount)
		assert.EqualValues(t, 3000, tx.AmountTendered)
		assert.EqualValues(t, 600, tx.Change)
		assert.Equal(t, tctx.SessionID(), tx.SessionID)
		assert.Equal(t, "Budi", tx.CashierName)
		assert.NotEmpty(t, tx.ID)
		assert.NotEmpty(t, tx.Code)
		assert.Len(t, tx.Lines, 2)

		assert.True(t, o.IsEmpty(), "order cleared after success")
		repo.AssertExpectations(t)
		emitter.AssertExpectations(t)
	})

	t.Run("Exact tender yields zero change", func(t *testing.T) {
		repo := new(MockRepository)
		emitter := new(MockEmitter)
		svc, _ := newTestService(repo, emitter)
		o := testOrder(t)

		repo.On("Append", mock.Anything, mock.Anything).Return(nil)
		emitter.On("Emit", mock.Anything, mock.Anything).Return(nil)

		tx, err := svc.Finalize(context.Background(), o, FinalizeParams{
			Method:         MethodCash,
			AmountTendered: 2400,
		})

		require.NoError(t, err)
		assert.EqualValues(t, 0, tx.Change)
	})

	t.Run("Insufficient tender creates nothing", func(t *testing.T) {
		repo := new(MockRepository)
		emitter := new(MockEmitter)
		svc, _ := newTestService(repo, emitter)
		o := testOrder(t)

		tx, err := svc.Finalize(context.Background(), o, FinalizeParams{
			Method:         MethodCash,
			AmountTendered: 2399,
		})

		assert.ErrorIs(t, err, ErrInsufficientTender)
		assert.Nil(t, tx)
		assert.False(t, o.IsEmpty(), "order untouched")
		repo.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
		emitter.AssertNotCalled(t, "Emit", mock.Anything, mock.Anything)
	})
}

func TestService_Finalize_NonCash(t *testing.T) {
	for _, method := range []Method{MethodDebit, MethodCredit, MethodQRIS} {
		t.Run(string(method), func(t *testing.T) {
			repo := new(MockRepository)
			emitter := new(MockEmitter)
			svc, _ := newTestService(repo, emitter)
			o := testOrder(t)

			repo.On("Append", mock.Anything, mock.Anything).Return(nil)
			emitter.On("Emit", mock.Anything, mock.Anything).Return(nil)

			// A stale tender value from the dialog must be ignored.
			tx, err := svc.Finalize(context.Background(), o, FinalizeParams{
				Method:         method,
				AmountTendered: 99999,
			})

			require.NoError(t, err)
			assert.EqualValues(t, 2400, tx.AmountTendered)
			assert.EqualValues(t, 0, tx.Change)
		})
	}
}

func TestService_Finalize_Validation(t *testing.T) {
	t.Run("Empty order", func(t *testing.T) {
		repo := new(MockRepository)
		emitter := new(MockEmitter)
		svc, _ := newTestService(repo, emitter)

		_, err := svc.Finalize(context.Background(), order.New(), FinalizeParams{Method: MethodCash})
		assert.ErrorIs(t, err, order.ErrEmptyOrder)
	})

	t.Run("Unknown method", func(t *testing.T) {
		repo := new(MockRepository)
		emitter := new(MockEmitter)
		svc, _ := newTestService(repo, emitter)

		_, err := svc.Finalize(context.Background(), testOrder(t), FinalizeParams{Method: "CHEQUE"})
		assert.ErrorIs(t, err, ErrInvalidMethod)
	})

	t.Run("No active session", func(t *testing.T) {
		repo := new(MockRepository)
		emitter := new(MockEmitter)
		svc, tctx := newTestService(repo, emitter)
		tctx.End()

		_, err := svc.Finalize(context.Background(), testOrder(t), FinalizeParams{Method: MethodCash, AmountTendered: 5000})
		assert.ErrorIs(t, err, ErrNoSession)
	})
}

func TestService_Finalize_Failures(t *testing.T) {
	t.Run("Append failure keeps the order for retry", func(t *testing.T) {
		repo := new(MockRepository)
		emitter := new(MockEmitter)
		svc, _ := newTestService(repo, emitter)
		o := testOrder(t)

		repo.On("Append", mock.Anything, mock.Anything).Return(errors.New("disk full"))

		tx, err := svc.Finalize(context.Background(), o, FinalizeParams{
			Method:         MethodCash,
			AmountTendered: 3000,
		})

		assert.Error(t, err)
		assert.Nil(t, tx)
		assert.False(t, o.IsEmpty())
		emitter.AssertNotCalled(t, "Emit", mock.Anything, mock.Anything)
	})

	t.Run("Receipt failure does not unwind the sale", func(t *testing.T) {
		repo := new(MockRepository)
		emitter := new(MockEmitter)
		svc, _ := newTestService(repo, emitter)
		o := testOrder(t)

		repo.On("Append", mock.Anything, mock.Anything).Return(nil)
		emitter.On("Emit", mock.Anything, mock.Anything).Return(errors.New("printer offline")).Once()

		tx, err := svc.Finalize(context.Background(), o, FinalizeParams{
			Method:         MethodCash,
			AmountTendered: 2400,
		})

		assert.NoError(t, err)
		assert.NotNil(t, tx)
		assert.True(t, o.IsEmpty())
		emitter.AssertExpectations(t)
	})

	t.Run("Two finalizations produce two distinct records", func(t *testing.T) {
		repo := new(MockRepository)
		emitter := new(MockEmitter)
		svc, _ := newTestService(repo, emitter)

		repo.On("Append", mock.Anything, mock.Anything).Return(nil).Twice()
		emitter.On("Emit", mock.Anything, mock.Anything).Return(nil).Twice()

		first, err := svc.Finalize(context.Background(), testOrder(t), FinalizeParams{Method: MethodQRIS})
		require.NoError(t, err)
		second, err := svc.Finalize(context.Background(), testOrder(t), FinalizeParams{Method: MethodQRIS})
		require.NoError(t, err)

		assert.NotEqual(t, first.ID, second.ID)
	})
}

func TestService_TransactionsBySession(t *testing.T) {
	repo := new(MockRepository)
	emitter := new(MockEmitter)
	svc, _ := newTestService(repo, emitter)

	want := []CompletedTransaction{{ID: "tx-1", Method: MethodCash, TotalAmount: 50000}}
	repo.On("ListBySession", mock.Anything, "sess-1").Return(want, nil)

	got, err := svc.TransactionsBySession(context.Background(), "sess-1")
	assert.NoError(t, err)
	assert.Equal(t, want, got)
}
