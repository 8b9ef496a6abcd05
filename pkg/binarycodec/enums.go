package binarycodec

// Names of the enumerated UInt16 and UInt8 fields. Unknown codes render as
// plain numbers.

var transactionTypes = map[string]uint16{
	"Payment":              0,
	"EscrowCreate":         1,
	"EscrowFinish":         2,
	"AccountSet":           3,
	"EscrowCancel":         4,
	"SetRegularKey":        5,
	"NickNameSet":          6,
	"OfferCreate":          7,
	"OfferCancel":          8,
	"Contract":             9,
	"TicketCreate":         10,
	"TicketCancel":         11,
	"SignerListSet":        12,
	"PaymentChannelCreate": 13,
	"PaymentChannelFund":   14,
	"PaymentChannelClaim":  15,
	"CheckCreate":          16,
	"CheckCash":            17,
	"CheckCancel":          18,
	"DepositPreauth":       19,
	"TrustSet":             20,
	"AccountDelete":        21,
	"SetHook":              22,
	"NFTokenMint":          25,
	"NFTokenBurn":          26,
	"NFTokenCreateOffer":   27,
	"NFTokenCancelOffer":   28,
	"NFTokenAcceptOffer":   29,
	"Clawback":             30,
	"AMMCreate":            35,
	"AMMDeposit":           36,
	"AMMWithdraw":          37,
	"AMMVote":              38,
	"AMMBid":               39,
	"AMMDelete":            40,
	"EnableAmendment":      100,
	"SetFee":               101,
	"UNLModify":            102,
}

var ledgerEntryTypes = map[string]uint16{
	"AccountRoot":    0x61,
	"DirectoryNode":  0x64,
	"RippleState":    0x72,
	"Offer":          0x6f,
	"SignerList":     0x53,
	"Ticket":         0x54,
	"LedgerHashes":   0x68,
	"Amendments":     0x66,
	"FeeSettings":    0x73,
	"Escrow":         0x75,
	"PayChannel":     0x78,
	"Check":          0x43,
	"DepositPreauth": 0x70,
	"NegativeUNL":    0x4e,
	"NFTokenPage":    0x50,
	"NFTokenOffer":   0x37,
	"AMM":            0x79,
}

var transactionResults = map[string]uint8{
	"tesSUCCESS":               0,
	"tecCLAIM":                 100,
	"tecPATH_PARTIAL":          101,
	"tecUNFUNDED_ADD":          102,
	"tecUNFUNDED_OFFER":        103,
	"tecUNFUNDED_PAYMENT":      104,
	"tecFAILED_PROCESSING":     105,
	"tecDIR_FULL":              121,
	"tecINSUF_RESERVE_LINE":    122,
	"tecINSUF_RESERVE_OFFER":   123,
	"tecNO_DST":                124,
	"tecNO_DST_INSUF_XRP":      125,
	"tecNO_LINE_INSUF_RESERVE": 126,
	"tecNO_LINE_REDUNDANT":     127,
	"tecPATH_DRY":              128,
	"tecUNFUNDED":              129,
	"tecNO_ALTERNATIVE_KEY":    130,
	"tecNO_REGULAR_KEY":        131,
	"tecOWNERS":                132,
	"tecNO_ISSUER":             133,
	"tecNO_AUTH":               134,
	"tecNO_LINE":               135,
	"tecINSUFF_FEE":            136,
	"tecFROZEN":                137,
	"tecNO_TARGET":             138,
	"tecNO_PERMISSION":         139,
	"tecNO_ENTRY":              140,
	"tecINSUFFICIENT_RESERVE":  141,
	"tecNEED_MASTER_KEY":       142,
	"tecDST_TAG_NEEDED":        143,
	"tecINTERNAL":              144,
	"tecOVERSIZE":              145,
	"tecCRYPTOCONDITION_ERROR": 146,
	"tecINVARIANT_FAILED":      147,
	"tecEXPIRED":               148,
	"tecDUPLICATE":             149,
	"tecKILLED":                150,
	"tecHAS_OBLIGATIONS":       151,
	"tecTOO_SOON":              152,
}

var (
	transactionTypeNames  = invert16(transactionTypes)
	ledgerEntryTypeNames  = invert16(ledgerEntryTypes)
	transactionResultName = invert8(transactionResults)
)

func invert16(m map[string]uint16) map[uint16]string {
	out := make(map[uint16]string, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}

func invert8(m map[string]uint8) map[uint8]string {
	out := make(map[uint8]string, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}

// enum16 returns the name tables of an enumerated UInt16 field.
func enum16(f *Field) (map[string]uint16, map[uint16]string) {
	switch f.Name {
	case "TransactionType":
		return transactionTypes, transactionTypeNames
	case "LedgerEntryType":
		return ledgerEntryTypes, ledgerEntryTypeNames
	}
	return nil, nil
}

func enum8(f *Field) (map[string]uint8, map[uint8]string) {
	if f.Name == "TransactionResult" {
		return transactionResults, transactionResultName
	}
	return nil, nil
}

// TransactionTypeCode returns the code of a named transaction type.
func TransactionTypeCode(name string) (uint16, bool) {
	code, ok := transactionTypes[name]
	return code, ok
}
