package readvertise

import "log/slog"

// LoggingAdvertiser is a placeholder Advertiser that just logs: the actual
// readvertise execution engine publishing Interests upstream is an
// external collaborator, out of scope here (spec §1). It's enough for
// daemons that haven't wired a real engine in yet, and for tests that want
// to assert on log output rather than a mock's call history.
type LoggingAdvertiser struct {
	Log *slog.Logger
}

// Advertise implements Advertiser.
func (a *LoggingAdvertiser) Advertise(action ReadvertiseAction) {
	a.Log.Info("readvertise", "prefix", action.Prefix.String(), "cost", action.Cost, "identity", action.Signer.Identity.String())
}

// Withdraw implements Advertiser.
func (a *LoggingAdvertiser) Withdraw(action ReadvertiseAction) {
	a.Log.Info("readvertise withdraw", "prefix", action.Prefix.String(), "cost", action.Cost, "identity", action.Signer.Identity.String())
}
