package config

import "github.com/aldenms/typesplit/internal/splitter"

// Config represents the complete typesplit configuration.
// It can be loaded from typesplit.yml with environment variable overrides.
type Config struct {
	Source     SourceConfig        `yaml:"source" mapstructure:"source"`
	Output     OutputConfig        `yaml:"output" mapstructure:"output"`
	Scan       ScanConfig          `yaml:"scan" mapstructure:"scan"`
	Categories map[string][]string `yaml:"categories" mapstructure:"categories"`
}

// SourceConfig identifies the input file to split.
type SourceConfig struct {
	Path string `yaml:"path" mapstructure:"path"` // monolithic types file to split
}

// OutputConfig defines where and how module files are emitted.
type OutputConfig struct {
	Dir      string `yaml:"dir" mapstructure:"dir"`           // directory receiving <category>.rs files plus mod.rs
	Preamble string `yaml:"preamble" mapstructure:"preamble"` // shared import line written atop every module file
	Fallback string `yaml:"fallback" mapstructure:"fallback"` // category for identifiers absent from the table
}

// ScanConfig tunes the textual scanner.
type ScanConfig struct {
	Lookahead int `yaml:"lookahead" mapstructure:"lookahead"` // max lines scanned past an enum body for its impl block
}

// Default returns a configuration with sensible defaults. The category table
// is the FIX enum taxonomy the tool was built to split; a config file
// replaces it wholesale.
func Default() *Config {
	return &Config{
		Source: SourceConfig{
			Path: "src/types.rs",
		},
		Output: OutputConfig{
			Dir:      "src/types",
			Preamble: splitter.DefaultPreamble,
			Fallback: splitter.DefaultFallbackCategory,
		},
		Scan: ScanConfig{
			Lookahead: splitter.DefaultLookahead,
		},
		Categories: DefaultCategories(),
	}
}

// DefaultCategories returns the built-in category table mapping FIX enum
// identifiers to topical modules.
func DefaultCategories() map[string][]string {
	return map[string][]string{
		"order": {
			"Side", "OrdType", "OrdStatus", "ExecType", "DKReason", "ExecAckStatus",
		},
		"cross": {
			"CrossType", "CrossPrioritization",
		},
		"program_trading": {
			"BidType", "ProgRptReqs", "ListExecInstType", "ListStatusType",
			"ListOrderStatus", "BidDescriptorType", "SideValueInd", "NetGrossInd",
			"PriceType", "OrderEntryAction",
		},
		"mass_operations": {
			"MassCancelRequestType", "MassCancelResponse", "MassActionType",
			"MassActionResponse", "MassStatusReqType", "OrderResponseLevel",
		},
		"multileg": {
			"MultilegReportingType", "MultilegModel", "MultilegPriceMethod",
		},
		"infrastructure": {
			"BusinessRejectReason", "NetworkRequestType", "NetworkStatusResponseType",
			"NetworkSystemStatus", "ApplReqType", "ApplResponseType", "ApplReportType",
			"UserRequestType", "UserStatus",
		},
		"indication": {
			"IOITransType", "IOIQltyInd", "AdvSide", "AdvTransType", "QtyType",
		},
		"communication": {
			"EmailType", "NewsRefType", "NewsCategory",
		},
		"quotation": {
			"QuoteType", "QuoteRequestType", "QuoteCancelType", "QuoteResponseLevel",
			"QuoteRequestRejectReason", "QuoteStatus", "QuoteCondition",
		},
		"market_data": {
			"MDReqRejReason", "MDUpdateType", "SubscriptionRequestType", "MDEntryType",
		},
		"market_structure": {
			"TradSesStatus", "TradSesMethod", "TradSesMode", "TradSesStatusRejReason",
			"TradSesUpdateAction", "MarketUpdateAction",
		},
		"securities": {
			"SecurityRequestType", "SecurityRequestResult", "SecurityListRequestType",
			"SecurityUpdateAction", "SecurityTradingStatus", "HaltReason",
		},
		"post_trade": {
			// Allocation
			"AllocTransType", "AllocType", "AllocStatus", "AllocRejCode",
			"AllocCancReplaceReason", "AllocIntermedReqType", "AllocReportType",
			"AvgPxIndicator", "AllocRequestStatus", "MatchStatus", "IndividualAllocRejCode",
			// Confirmation
			"ConfirmType", "ConfirmStatus", "ConfirmTransType", "AffirmStatus",
			"ConfirmRejReason",
			// Position
			"PosReqType", "PosTransType", "PosMaintAction", "PosMaintResult",
			"PosReqStatus", "PosReqResult", "PosType", "PosQtyStatus",
			"SettlPriceType", "AdjustmentType", "PosAmtType",
			// Settlement
			"SettlInstMode", "SettlInstTransType", "SettlInstSource", "StandInstDbType",
			"SettlInstReqRejCode", "SettlObligMode",
			// Trade Capture
			"TradeRequestType", "TradeRequestResult", "TradeRequestStatus",
			"TradeReportType", "TrdType", "TrdSubType", "MatchType",
		},
	}
}

// ToSplitterOptions converts the configuration into splitter options.
func (c *Config) ToSplitterOptions() splitter.Options {
	return splitter.Options{
		InputPath:  c.Source.Path,
		OutputDir:  c.Output.Dir,
		Preamble:   c.Output.Preamble,
		Lookahead:  c.Scan.Lookahead,
		Fallback:   c.Output.Fallback,
		Categories: splitter.CategoryTable(c.Categories),
	}
}
