package message

// Session is the synchronous, single-threaded sequencing guard for the
// protocol's message order: it rejects any message accepted out of the
// two-phase-commit order, but performs no I/O and owns no transport of
// its own. A caller drives it one accepted message at a time as each
// arrives.
//
// Ordering: both Commit* before either Reveal* is accepted; both Reveal*
// before CoreArbitratingSetup; CoreArbitratingSetup before
// RefundProcedureSignatures; RefundProcedureSignatures before
// BuyProcedureSignature. Abort is legal at any point up to the Lock
// transaction's broadcast, recorded by the caller via MarkLockBroadcast.
type Session struct {
	aliceCommitted bool
	bobCommitted   bool
	aliceRevealed  bool
	bobRevealed    bool
	setupDone      bool
	refundProcDone bool
	buyProcDone    bool

	aborted       bool
	lockBroadcast bool
}

// NewSession returns a Session at its initial, pre-commit state.
func NewSession() *Session { return &Session{} }

// AcceptCommitAlice records CommitAliceParameters' arrival. Commits have
// no predecessor in the ordering, so only a prior Abort blocks them.
func (s *Session) AcceptCommitAlice() error {
	if err := s.checkLive(); err != nil {
		return err
	}
	s.aliceCommitted = true
	return nil
}

// AcceptCommitBob records CommitBobParameters' arrival.
func (s *Session) AcceptCommitBob() error {
	if err := s.checkLive(); err != nil {
		return err
	}
	s.bobCommitted = true
	return nil
}

// AcceptRevealAlice validates ordering for RevealAliceParameters: both
// commits must already have landed.
func (s *Session) AcceptRevealAlice() error {
	if err := s.checkLive(); err != nil {
		return err
	}
	if !s.aliceCommitted || !s.bobCommitted {
		return outOfOrder()
	}
	s.aliceRevealed = true
	return nil
}

// AcceptRevealBob validates ordering for RevealBobParameters.
func (s *Session) AcceptRevealBob() error {
	if err := s.checkLive(); err != nil {
		return err
	}
	if !s.aliceCommitted || !s.bobCommitted {
		return outOfOrder()
	}
	s.bobRevealed = true
	return nil
}

// AcceptCoreArbitratingSetup validates ordering: both reveals must
// already have landed.
func (s *Session) AcceptCoreArbitratingSetup() error {
	if err := s.checkLive(); err != nil {
		return err
	}
	if !s.aliceRevealed || !s.bobRevealed {
		return outOfOrder()
	}
	s.setupDone = true
	return nil
}

// AcceptRefundProcedureSignatures validates ordering: CoreArbitratingSetup
// must already have landed.
func (s *Session) AcceptRefundProcedureSignatures() error {
	if err := s.checkLive(); err != nil {
		return err
	}
	if !s.setupDone {
		return outOfOrder()
	}
	s.refundProcDone = true
	return nil
}

// AcceptBuyProcedureSignature validates ordering: RefundProcedureSignatures
// must already have landed.
func (s *Session) AcceptBuyProcedureSignature() error {
	if err := s.checkLive(); err != nil {
		return err
	}
	if !s.refundProcDone {
		return outOfOrder()
	}
	s.buyProcDone = true
	return nil
}

// AcceptAbort transitions the session to its terminal aborted state.
// Legal at any point before the Lock transaction broadcasts; after that
// the caller must have called MarkLockBroadcast, and an Abort received
// past that point is rejected as out of order since recovery is now
// exclusively on-chain (Cancel -> Refund or Punish).
func (s *Session) AcceptAbort() error {
	if s.lockBroadcast {
		return outOfOrder()
	}
	s.aborted = true
	return nil
}

// MarkLockBroadcast records that the Lock transaction has been observed
// broadcast on the arbitrating chain, after which Abort is no longer a
// meaningful cancellation path.
func (s *Session) MarkLockBroadcast() { s.lockBroadcast = true }

// IsAborted reports whether the session has transitioned to aborted.
func (s *Session) IsAborted() bool { return s.aborted }

func (s *Session) checkLive() error {
	if s.aborted {
		return outOfOrder()
	}
	return nil
}
