// Package lending orchestrates the four state-changing ledger operations.
// Every operation runs accrue -> validate -> mutate -> emit, serialized
// behind a single mutex: market totals and account balances are shared
// state with no partial-update visibility allowed.
package lending

import (
	"context"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/fox-one/pkg/logger"
	"github.com/fox-one/pkg/store/db"
	"github.com/sirupsen/logrus"

	"lendpool/core"
	"lendpool/internal/ledger"
	"lendpool/pkg/id"
)

type lendingService struct {
	db               *db.DB
	assetID          string
	marketStore      core.IMarketStore
	accountStore     core.IAccountStore
	transactionStore core.TransactionStore
	priceService     core.IPriceOracleService
	sink             core.EventSink

	mux sync.Mutex
}

// New new lending service
func New(
	db *db.DB,
	assetID string,
	marketStore core.IMarketStore,
	accountStore core.IAccountStore,
	transactionStore core.TransactionStore,
	priceSrv core.IPriceOracleService,
	sink core.EventSink,
) core.ILendingService {
	return &lendingService{
		db:               db,
		assetID:          assetID,
		marketStore:      marketStore,
		accountStore:     accountStore,
		transactionStore: transactionStore,
		priceService:     priceSrv,
		sink:             sink,
	}
}

func (s *lendingService) Supply(ctx context.Context, userID string, amount *big.Int, now time.Time) error {
	s.mux.Lock()
	defer s.mux.Unlock()

	log := s.log(ctx, core.ActionTypeSupply, userID, amount)

	if amount == nil || amount.Sign() <= 0 {
		return core.ErrZeroAmount
	}

	market, account, err := s.load(ctx, userID)
	if err != nil {
		return err
	}

	if err := ledger.ApplyAccrual(account, market, now); err != nil {
		return err
	}

	if err := ledger.RecordSupply(market, account, amount); err != nil {
		return err
	}

	transaction := s.buildTransaction(core.ActionTypeSupply, userID, amount, now)
	if err := s.commit(ctx, market, account, transaction); err != nil {
		log.WithError(err).Errorln("commit supply")
		return err
	}

	s.notify(ctx, core.EventSupplied, userID, amount, now)
	return nil
}

func (s *lendingService) Withdraw(ctx context.Context, userID string, amount *big.Int, now time.Time) (*core.Transfer, error) {
	s.mux.Lock()
	defer s.mux.Unlock()

	log := s.log(ctx, core.ActionTypeWithdraw, userID, amount)

	if amount == nil || amount.Sign() <= 0 {
		return nil, core.ErrZeroAmount
	}

	market, account, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := ledger.ApplyAccrual(account, market, now); err != nil {
		return nil, err
	}

	if err := ledger.RecordWithdraw(market, account, amount); err != nil {
		return nil, err
	}

	transaction := s.buildTransaction(core.ActionTypeWithdraw, userID, amount, now)
	if err := s.commit(ctx, market, account, transaction); err != nil {
		log.WithError(err).Errorln("commit withdraw")
		return nil, err
	}

	s.notify(ctx, core.EventWithdrawn, userID, amount, now)
	return s.payOut(transaction.TraceID, userID, amount), nil
}

func (s *lendingService) Borrow(ctx context.Context, userID string, amount *big.Int, now time.Time) (*core.Transfer, error) {
	s.mux.Lock()
	defer s.mux.Unlock()

	log := s.log(ctx, core.ActionTypeBorrow, userID, amount)

	if amount == nil || amount.Sign() <= 0 {
		return nil, core.ErrZeroAmount
	}

	market, account, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := ledger.ApplyAccrual(account, market, now); err != nil {
		return nil, err
	}

	// the solvency check prices post-accrual balances at the current price
	price, err := s.priceService.GetPrice(ctx, s.assetID)
	if err != nil {
		return nil, err
	}

	if err := ledger.RecordBorrow(market, account, amount, price); err != nil {
		return nil, err
	}

	transaction := s.buildTransaction(core.ActionTypeBorrow, userID, amount, now)
	if err := s.commit(ctx, market, account, transaction); err != nil {
		log.WithError(err).Errorln("commit borrow")
		return nil, err
	}

	s.notify(ctx, core.EventBorrowed, userID, amount, now)
	return s.payOut(transaction.TraceID, userID, amount), nil
}

func (s *lendingService) Repay(ctx context.Context, userID string, sentAmount *big.Int, now time.Time) (*core.RepayResult, error) {
	s.mux.Lock()
	defer s.mux.Unlock()

	log := s.log(ctx, core.ActionTypeRepay, userID, sentAmount)

	if sentAmount == nil || sentAmount.Sign() <= 0 {
		return nil, core.ErrZeroAmount
	}

	market, account, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := ledger.ApplyAccrual(account, market, now); err != nil {
		return nil, err
	}

	repaid, refund, err := ledger.RecordRepay(market, account, sentAmount)
	if err != nil {
		return nil, err
	}

	transaction := s.buildTransaction(core.ActionTypeRepay, userID, sentAmount, now)
	transaction.Repaid = core.NewBigInt(repaid)
	transaction.Refund = core.NewBigInt(refund)
	if err := s.commit(ctx, market, account, transaction); err != nil {
		log.WithError(err).Errorln("commit repay")
		return nil, err
	}

	s.notify(ctx, core.EventRepaid, userID, repaid, now)

	result := &core.RepayResult{Repaid: repaid}
	if refund.Sign() > 0 {
		result.Refund = s.payOut(transaction.TraceID+"-refund", userID, refund)
	}
	return result, nil
}

func (s *lendingService) load(ctx context.Context, userID string) (*core.Market, *core.Account, error) {
	market, err := s.marketStore.Find(ctx, s.assetID)
	if err != nil {
		return nil, nil, err
	}

	account, err := s.accountStore.Find(ctx, s.assetID, userID)
	if err != nil {
		return nil, nil, err
	}

	return market, account, nil
}

// commit persists the mutated market, account and transaction row as one
// unit; a failed operation leaves no partial state behind.
func (s *lendingService) commit(ctx context.Context, market *core.Market, account *core.Account, transaction *core.Transaction) error {
	return s.db.Tx(func(tx *db.DB) error {
		if err := s.marketStore.Update(ctx, tx, market); err != nil {
			return err
		}

		if account.ID == 0 {
			if err := s.accountStore.Save(ctx, tx, account); err != nil {
				return err
			}
		} else if err := s.accountStore.Update(ctx, tx, account); err != nil {
			return err
		}

		return s.transactionStore.Create(ctx, tx, transaction)
	})
}

func (s *lendingService) buildTransaction(action core.ActionType, userID string, amount *big.Int, now time.Time) *core.Transaction {
	return &core.Transaction{
		TraceID:   id.TraceIDFrom(fmt.Sprintf("%s-%s-%s-%s-%d", s.assetID, userID, action, amount, now.UnixNano())),
		AssetID:   s.assetID,
		UserID:    userID,
		Action:    action,
		Amount:    core.NewBigInt(amount),
		CreatedAt: now,
	}
}

func (s *lendingService) payOut(trace, userID string, amount *big.Int) *core.Transfer {
	return &core.Transfer{
		TraceID:  id.TraceIDFrom(trace + "-payout"),
		AssetID:  s.assetID,
		Opponent: userID,
		Amount:   new(big.Int).Set(amount),
	}
}

func (s *lendingService) notify(ctx context.Context, typ core.EventType, userID string, amount *big.Int, now time.Time) {
	s.sink.Notify(ctx, &core.Event{
		Type:      typ,
		UserID:    userID,
		AssetID:   s.assetID,
		Amount:    new(big.Int).Set(amount),
		CreatedAt: now,
	})
}

func (s *lendingService) log(ctx context.Context, action core.ActionType, userID string, amount *big.Int) *logrus.Entry {
	return logger.FromContext(ctx).WithFields(logrus.Fields{
		"op":      action.String(),
		"user_id": userID,
		"amount":  amount,
	})
}
