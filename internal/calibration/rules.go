package calibration

import "github.com/Simba256/Decision-Tree/internal/domain"

// A rule maps one profile factor to a multiplier for a given edge.
// Rules return 1.0 for edges they do not touch and for baseline profile
// values, so a default profile leaves every edge unchanged.
type rule func(p domain.UserProfile, sourceID, targetID string) float64

// multiplierRules is the ordered registry applied to every child edge.
var multiplierRules = []rule{
	riskToleranceRule,
	performanceRule,
	englishRule,
	experienceRule,
	savingsRule,
	quantAptitudeRule,
	sideProjectsRule,
	freelanceProfileRule,
	publicationsRule,
	gpaRule,
}

func in(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

var (
	riskyRoots  = []string{"p1_trading", "p1_startup", "p1_freelance"}
	stableRoots = []string{"p1_promoted", "p1_notpromoted_stay", "p1_switch_local"}
)

// riskToleranceRule shifts the root-level branch weights and the
// stay-versus-quit splits inside the trading and startup subtrees.
func riskToleranceRule(p domain.UserProfile, sourceID, targetID string) float64 {
	risk := p.RiskTolerance
	if risk == "moderate" {
		return 1.0
	}

	if sourceID == "root" {
		if risk == "high" {
			if in(riskyRoots, targetID) {
				return riskHighRiskyBoost
			}
			if in(stableRoots, targetID) {
				return riskHighStableSuppress
			}
		} else if risk == "low" {
			if in(riskyRoots, targetID) {
				return riskLowRiskySuppress
			}
			if in(stableRoots, targetID) {
				return riskLowStableBoost
			}
		}
	}

	if risk == "high" {
		switch targetID {
		case "p4_trade_fulltime":
			return riskHighTradeFulltime
		case "p4_trade_quit":
			return riskHighTradeQuit
		}
	} else if risk == "low" {
		switch targetID {
		case "p4_trade_fulltime":
			return riskLowTradeFulltime
		case "p4_trade_quit":
			return riskLowTradeQuit
		}
	}

	if risk == "high" {
		if targetID == "p4_startup_scale" || targetID == "p3_startup_funded" {
			return riskHighStartupBoost
		}
		if targetID == "p4_startup_abandoned" {
			return riskHighStartupAbandon
		}
	} else if risk == "low" {
		if targetID == "p4_startup_scale" || targetID == "p3_startup_funded" {
			return riskLowStartupSuppress
		}
		if targetID == "p4_startup_abandoned" {
			return riskLowStartupAbandon
		}
	}

	return 1.0
}

var seniorTargets = []string{
	"p3_l5_achieved", "p3_local_senior_rise", "p4_motive_staff", "p4_local_staff",
}

// performanceRule drives promotion odds at the current employer and the
// later staff/senior advancement edges.
func performanceRule(p domain.UserProfile, sourceID, targetID string) float64 {
	perf := p.PerformanceRating
	if perf == "strong" {
		return 1.0
	}

	if sourceID == "root" && targetID == "p1_promoted" {
		switch perf {
		case "top":
			return perfTopPromoted
		case "average":
			return perfAvgPromoted
		case "below":
			return perfBelowPromoted
		}
	}
	if sourceID == "root" && targetID == "p1_notpromoted_stay" {
		switch perf {
		case "top":
			return perfTopNotPromoted
		case "average":
			return perfAvgNotPromoted
		case "below":
			return perfBelowNotPromoted
		}
	}
	if targetID == "p3_retry_promoted" {
		switch perf {
		case "top":
			return perfTopRetryPromoted
		case "average":
			return perfAvgRetryPromoted
		case "below":
			return perfBelowRetryPromoted
		}
	}
	if targetID == "p3_retry_failed_leave" {
		switch perf {
		case "top":
			return perfTopRetryLeave
		case "average":
			return perfAvgRetryLeave
		case "below":
			return perfBelowRetryLeave
		}
	}
	if in(seniorTargets, targetID) {
		switch perf {
		case "top":
			return perfTopSenior
		case "average":
			return perfAvgSenior
		case "below":
			return perfBelowSenior
		}
	}

	return 1.0
}

var remoteTargets = []string{
	"p2_l4_remoteUSD", "p2_np_remote", "p2_local_remote",
	"p3_remote_senior", "p3_local_switch_remote", "p3_local_pivot_remote",
	"p3_stagnate_remote", "p4_remote_staff", "p4_remote_stable_senior",
	"p4_l5_goremote", "p4_l4stall_remote", "p4_local_sr_remote",
	"p4_remote_sr_direct",
}

var freelanceCommTargets = []string{
	"p3_freelance_fulltime", "p4_freelance_premium", "p4_freelance_stable",
}

var localTargets = []string{
	"p2_l4_switchlocal", "p2_l4_staymotive", "p3_l5_stalled_motive",
	"p4_l4stall_local_sr",
}

// englishRule weights the remote and freelance edges by language level
// and gives local edges the inverse adjustment.
func englishRule(p domain.UserProfile, _, targetID string) float64 {
	eng := p.EnglishLevel
	if eng == "professional" {
		return 1.0
	}

	if in(remoteTargets, targetID) || in(freelanceCommTargets, targetID) {
		switch eng {
		case "native":
			return engNativeRemote
		case "intermediate":
			return engIntermediateRemote
		case "basic":
			return engBasicRemote
		}
	}
	if in(localTargets, targetID) {
		switch eng {
		case "native":
			return engNativeLocal
		case "intermediate":
			return engIntermediateLocal
		case "basic":
			return engBasicLocal
		}
	}

	return 1.0
}

var (
	expPromotedTargets = []string{"p1_promoted", "p3_retry_promoted", "p2_local_promoted"}
	expRemoteTargets   = []string{"p2_l4_remoteUSD", "p2_np_remote", "p3_remote_senior", "p4_remote_staff"}
	expStagnateTargets = []string{"p2_local_stagnate", "p3_teamswitch_stuck", "p3_l5_stalled_motive"}
)

// experienceRule weights promotion, remote-job, and stagnation edges by
// years of experience around the two-year baseline.
func experienceRule(p domain.UserProfile, _, targetID string) float64 {
	yoe := p.YearsExperience
	if yoe >= expBaselineLow && yoe <= expBaselineHigh {
		return 1.0
	}

	if in(expPromotedTargets, targetID) {
		switch {
		case yoe >= 5:
			return exp5PlusPromoted
		case yoe >= 3:
			return exp3PlusPromoted
		case yoe <= 1:
			return exp1MinusPromoted
		}
	}
	if in(expRemoteTargets, targetID) {
		switch {
		case yoe >= 5:
			return exp5PlusRemote
		case yoe >= 3:
			return exp3PlusRemote
		case yoe <= 1:
			return exp1MinusRemote
		}
	}
	if in(expStagnateTargets, targetID) {
		switch {
		case yoe >= 5:
			return exp5PlusStagnate
		case yoe >= 3:
			return exp3PlusStagnate
		case yoe <= 1:
			return exp1MinusStagnate
		}
	}

	return 1.0
}

// savingsRule gates the capital-intensive paths on available savings.
// Baseline is $5,000, which falls through every band.
func savingsRule(p domain.UserProfile, sourceID, targetID string) float64 {
	savings := p.AvailableSavingsUSD

	if sourceID == "root" && targetID == "p1_trading" {
		switch {
		case savings >= 20000:
			return savings20KTrading
		case savings >= 10000:
			return savings10KTrading
		case savings <= 2000:
			return savings2KTrading
		case savings <= 1000:
			return savings1KTrading
		}
	}
	if sourceID == "root" && targetID == "p1_startup" {
		switch {
		case savings >= 15000:
			return savings15KStartup
		case savings >= 10000:
			return savings10KStartup
		case savings <= 2000:
			return savings2KStartup
		}
	}
	if sourceID == "p1_trading" && targetID == "p2_trade_stocks" {
		switch {
		case savings >= 20000:
			return savings20KStocks
		case savings <= 3000:
			return savings3KStocks
		}
	}
	if sourceID == "p1_trading" && targetID == "p2_trade_crypto" {
		switch {
		case savings <= 1000:
			return savings1KCrypto
		case savings >= 10000:
			return savings10KCrypto
		}
	}
	if targetID == "p3_trade_profitable" {
		switch {
		case savings >= 20000:
			return savings20KProfitable
		case savings <= 2000:
			return savings2KProfitable
		}
	}

	return 1.0
}

var algoTargets = []string{"p2_trade_algo", "p3_trade_algo_edge", "p4_trade_quant_fund"}

// quantAptitudeRule weights the trading subtree, especially the
// algorithmic path, by quantitative aptitude.
func quantAptitudeRule(p domain.UserProfile, _, targetID string) float64 {
	quant := p.QuantAptitude
	if quant == "moderate" {
		return 1.0
	}

	if in(algoTargets, targetID) {
		if quant == "strong" {
			return quantStrongAlgo
		}
		return quantWeakAlgo
	}
	if targetID == "p3_trade_profitable" {
		if quant == "strong" {
			return quantStrongProfitable
		}
		return quantWeakProfitable
	}
	if targetID == "p3_trade_loss" {
		if quant == "strong" {
			return quantStrongLoss
		}
		return quantWeakLoss
	}

	return 1.0
}

// sideProjectsRule boosts startup outcomes and portfolio-driven remote
// applications when the user already ships side projects.
func sideProjectsRule(p domain.UserProfile, sourceID, targetID string) float64 {
	if !p.HasSideProjects {
		return 1.0
	}

	if targetID == "p3_startup_traction" || targetID == "p3_startup_funded" {
		return projectsStartupTraction
	}
	if targetID == "p3_startup_failed" {
		return projectsStartupFailed
	}
	if targetID == "p2_l4_remoteUSD" || targetID == "p2_np_remote" {
		return projectsRemoteBoost
	}
	if sourceID == "root" && targetID == "p1_startup" {
		return projectsStartupRoot
	}

	return 1.0
}

// freelanceProfileRule boosts the freelance subtree when the user already
// has a profile with reviews.
func freelanceProfileRule(p domain.UserProfile, sourceID, targetID string) float64 {
	if !p.HasFreelanceProfile {
		return 1.0
	}

	if sourceID == "root" && targetID == "p1_freelance" {
		return freelanceRoot
	}
	if targetID == "p3_freelance_fulltime" || targetID == "p4_freelance_premium" {
		return freelanceSuccess
	}
	if targetID == "p3_freelance_side" {
		return freelanceSide
	}
	if targetID == "p3_freelance_dried" {
		return freelanceDried
	}
	if targetID == "p2_freelance_platform" {
		return freelancePlatform
	}

	return 1.0
}

var (
	pubsCareerTargets = []string{"p1_promoted", "p3_l5_achieved", "p4_motive_staff"}
	pubsRemoteTargets = []string{"p2_l4_remoteUSD", "p3_remote_senior", "p4_remote_staff"}
)

// publicationsRule rewards research publications on advancement, remote
// ML roles, and the AI SaaS startup edge.
func publicationsRule(p domain.UserProfile, _, targetID string) float64 {
	if !p.HasPublications {
		return 1.0
	}

	if in(pubsCareerTargets, targetID) {
		return pubsCareer
	}
	if in(pubsRemoteTargets, targetID) {
		return pubsRemote
	}
	if targetID == "p2_startup_ai_saas" {
		return pubsStartupAI
	}

	return 1.0
}

// gpaRule nudges the promotion edge for GPAs outside the baseline range.
func gpaRule(p domain.UserProfile, _, targetID string) float64 {
	if p.GPA == nil {
		return 1.0
	}
	gpa := *p.GPA
	if gpa >= gpaBaselineLow && gpa <= gpaBaselineHigh {
		return 1.0
	}

	if targetID == "p1_promoted" {
		if gpa >= 3.8 {
			return gpaHighPromoted
		}
		if gpa <= 2.5 {
			return gpaLowPromoted
		}
	}

	return 1.0
}
