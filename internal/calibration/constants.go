package calibration

// Calibration multiplier weights. A multiplier above 1.0 boosts an edge
// probability, below 1.0 suppresses it, and 1.0 leaves it unchanged.

// Risk tolerance (root-level branch weights).
const (
	riskHighRiskyBoost     = 1.4  // high risk: trading/startup/freelance boosted
	riskHighStableSuppress = 0.85 // high risk: stable paths suppressed
	riskLowRiskySuppress   = 0.6  // low risk: risky paths suppressed
	riskLowStableBoost     = 1.2  // low risk: stable paths boosted
	riskHighTradeFulltime  = 1.3
	riskHighTradeQuit      = 0.7
	riskLowTradeFulltime   = 0.7
	riskLowTradeQuit       = 1.3
	riskHighStartupBoost   = 1.2
	riskHighStartupAbandon = 0.8
	riskLowStartupSuppress = 0.8
	riskLowStartupAbandon  = 1.2
)

// Performance rating.
const (
	perfTopPromoted        = 1.35
	perfAvgPromoted        = 0.65
	perfBelowPromoted      = 0.35
	perfTopNotPromoted     = 0.70
	perfAvgNotPromoted     = 1.40
	perfBelowNotPromoted   = 1.70
	perfTopRetryPromoted   = 1.30
	perfAvgRetryPromoted   = 0.70
	perfBelowRetryPromoted = 0.45
	perfTopRetryLeave      = 0.75
	perfAvgRetryLeave      = 1.25
	perfBelowRetryLeave    = 1.50
	perfTopSenior          = 1.20
	perfAvgSenior          = 0.80
	perfBelowSenior        = 0.60
)

// English level.
const (
	engNativeRemote       = 1.25
	engIntermediateRemote = 0.65
	engBasicRemote        = 0.35
	engNativeLocal        = 0.90
	engIntermediateLocal  = 1.15
	engBasicLocal         = 1.30
)

// Years of experience. The baseline range maps to 1.0.
const (
	expBaselineLow     = 1.5
	expBaselineHigh    = 2.5
	exp5PlusPromoted   = 1.35
	exp3PlusPromoted   = 1.15
	exp1MinusPromoted  = 0.65
	exp5PlusRemote     = 1.30
	exp3PlusRemote     = 1.10
	exp1MinusRemote    = 0.70
	exp5PlusStagnate   = 0.70
	exp3PlusStagnate   = 0.85
	exp1MinusStagnate  = 1.30
)

// Available savings (full USD). Baseline is $5,000.
const (
	savings20KTrading    = 1.30
	savings10KTrading    = 1.15
	savings2KTrading     = 0.60
	savings1KTrading     = 0.30
	savings15KStartup    = 1.25
	savings10KStartup    = 1.10
	savings2KStartup     = 0.65
	savings20KStocks     = 1.30
	savings3KStocks      = 0.60
	savings1KCrypto      = 0.70
	savings10KCrypto     = 1.10
	savings20KProfitable = 1.20
	savings2KProfitable  = 0.75
)

// Quantitative aptitude.
const (
	quantStrongAlgo       = 1.40
	quantWeakAlgo         = 0.55
	quantStrongProfitable = 1.20
	quantWeakProfitable   = 0.80
	quantStrongLoss       = 0.75
	quantWeakLoss         = 1.35
)

// Side projects.
const (
	projectsStartupTraction = 1.30
	projectsStartupFailed   = 0.75
	projectsRemoteBoost     = 1.15
	projectsStartupRoot     = 1.20
)

// Freelance profile.
const (
	freelanceRoot     = 1.35
	freelanceSuccess  = 1.40
	freelanceSide     = 1.15
	freelanceDried    = 0.65
	freelancePlatform = 1.20
)

// Publications.
const (
	pubsCareer    = 1.15
	pubsRemote    = 1.20
	pubsStartupAI = 1.15
)

// GPA. The baseline range maps to 1.0.
const (
	gpaBaselineLow  = 3.3
	gpaBaselineHigh = 3.7
	gpaHighPromoted = 1.10
	gpaLowPromoted  = 0.90
)
