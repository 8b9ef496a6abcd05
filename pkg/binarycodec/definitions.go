package binarycodec

type fieldDefinition struct {
	name       string
	nth        uint8
	notSigning bool
}

type fieldGroup struct {
	typ    SerializedType
	fields []fieldDefinition
}

var fieldDefinitions = []fieldGroup{
	{TypeUInt16, []fieldDefinition{
		{"LedgerEntryType", 1, false},
		{"TransactionType", 2, false},
		{"SignerWeight", 3, false},
		{"TransferFee", 4, false},
		{"TradingFee", 5, false},
		{"DiscountedFee", 6, false},
		{"Version", 16, false},
		{"HookStateChangeCount", 17, false},
		{"HookEmitCount", 18, false},
		{"HookExecutionIndex", 19, false},
		{"HookApiVersion", 20, false},
	}},
	{TypeUInt32, []fieldDefinition{
		{"NetworkID", 1, false},
		{"Flags", 2, false},
		{"SourceTag", 3, false},
		{"Sequence", 4, false},
		{"PreviousTxnLgrSeq", 5, false},
		{"LedgerSequence", 6, false},
		{"CloseTime", 7, false},
		{"ParentCloseTime", 8, false},
		{"SigningTime", 9, false},
		{"Expiration", 10, false},
		{"TransferRate", 11, false},
		{"WalletSize", 12, false},
		{"OwnerCount", 13, false},
		{"DestinationTag", 14, false},
		{"HighQualityIn", 16, false},
		{"HighQualityOut", 17, false},
		{"LowQualityIn", 18, false},
		{"LowQualityOut", 19, false},
		{"QualityIn", 20, false},
		{"QualityOut", 21, false},
		{"StampEscrow", 22, false},
		{"BondAmount", 23, false},
		{"LoadFee", 24, false},
		{"OfferSequence", 25, false},
		{"FirstLedgerSequence", 26, false},
		{"LastLedgerSequence", 27, false},
		{"TransactionIndex", 28, false},
		{"OperationLimit", 29, false},
		{"ReferenceFeeUnits", 30, false},
		{"ReserveBase", 31, false},
		{"ReserveIncrement", 32, false},
		{"SetFlag", 33, false},
		{"ClearFlag", 34, false},
		{"SignerQuorum", 35, false},
		{"CancelAfter", 36, false},
		{"FinishAfter", 37, false},
		{"SignerListID", 38, false},
		{"SettleDelay", 39, false},
		{"TicketCount", 40, false},
		{"TicketSequence", 41, false},
		{"NFTokenTaxon", 42, false},
		{"MintedNFTokens", 43, false},
		{"BurnedNFTokens", 44, false},
		{"HookStateCount", 45, false},
		{"EmitGeneration", 46, false},
		{"VoteWeight", 48, false},
		{"FirstNFTokenSequence", 50, false},
	}},
	{TypeUInt64, []fieldDefinition{
		{"IndexNext", 1, false},
		{"IndexPrevious", 2, false},
		{"BookNode", 3, false},
		{"OwnerNode", 4, false},
		{"BaseFee", 5, false},
		{"ExchangeRate", 6, false},
		{"LowNode", 7, false},
		{"HighNode", 8, false},
		{"DestinationNode", 9, false},
		{"Cookie", 10, false},
		{"ServerVersion", 11, false},
		{"NFTokenOfferNode", 12, false},
		{"EmitBurden", 13, false},
		{"HookOn", 16, false},
		{"HookInstructionCount", 17, false},
		{"HookReturnCode", 18, false},
		{"ReferenceCount", 19, false},
	}},
	{TypeHash128, []fieldDefinition{
		{"EmailHash", 1, false},
	}},
	{TypeHash256, []fieldDefinition{
		{"LedgerHash", 1, false},
		{"ParentHash", 2, false},
		{"TransactionHash", 3, false},
		{"AccountHash", 4, false},
		{"PreviousTxnID", 5, false},
		{"LedgerIndex", 6, false},
		{"WalletLocator", 7, false},
		{"RootIndex", 8, false},
		{"AccountTxnID", 9, false},
		{"NFTokenID", 10, false},
		{"EmitParentTxnID", 11, false},
		{"EmitNonce", 12, false},
		{"EmitHookHash", 13, false},
		{"AMMID", 14, false},
		{"BookDirectory", 16, false},
		{"InvoiceID", 17, false},
		{"Nickname", 18, false},
		{"Amendment", 19, false},
		{"Digest", 21, false},
		{"Channel", 22, false},
		{"ConsensusHash", 23, false},
		{"CheckID", 24, false},
		{"ValidatedHash", 25, false},
		{"PreviousPageMin", 26, false},
		{"NextPageMin", 27, false},
		{"NFTokenBuyOffer", 28, false},
		{"NFTokenSellOffer", 29, false},
		{"HookStateKey", 30, false},
		{"HookHash", 31, false},
		{"HookNamespace", 32, false},
		{"HookSetTxnID", 33, false},
	}},
	{TypeAmount, []fieldDefinition{
		{"Amount", 1, false},
		{"Balance", 2, false},
		{"LimitAmount", 3, false},
		{"TakerPays", 4, false},
		{"TakerGets", 5, false},
		{"LowLimit", 6, false},
		{"HighLimit", 7, false},
		{"Fee", 8, false},
		{"SendMax", 9, false},
		{"DeliverMin", 10, false},
		{"Amount2", 11, false},
		{"BidMin", 12, false},
		{"BidMax", 13, false},
		{"MinimumOffer", 16, false},
		{"RippleEscrow", 17, false},
		{"DeliveredAmount", 18, false},
		{"NFTokenBrokerFee", 19, false},
		{"BaseFeeDrops", 22, false},
		{"ReserveBaseDrops", 23, false},
		{"ReserveIncrementDrops", 24, false},
		{"LPTokenOut", 25, false},
		{"LPTokenIn", 26, false},
		{"EPrice", 27, false},
		{"Price", 28, false},
		{"LPTokenBalance", 31, false},
	}},
	{TypeBlob, []fieldDefinition{
		{"PublicKey", 1, false},
		{"MessageKey", 2, false},
		{"SigningPubKey", 3, false},
		{"TxnSignature", 4, true},
		{"URI", 5, false},
		{"Signature", 6, true},
		{"Domain", 7, false},
		{"FundCode", 8, false},
		{"RemoveCode", 9, false},
		{"ExpireCode", 10, false},
		{"CreateCode", 11, false},
		{"MemoType", 12, false},
		{"MemoData", 13, false},
		{"MemoFormat", 14, false},
		{"Fulfillment", 16, false},
		{"Condition", 17, false},
		{"MasterSignature", 18, true},
		{"UNLModifyValidator", 19, false},
		{"ValidatorToDisable", 20, false},
		{"ValidatorToReEnable", 21, false},
		{"HookStateData", 22, false},
		{"HookReturnString", 23, false},
		{"HookParameterName", 24, false},
		{"HookParameterValue", 25, false},
	}},
	{TypeAccountID, []fieldDefinition{
		{"Account", 1, false},
		{"Owner", 2, false},
		{"Destination", 3, false},
		{"Issuer", 4, false},
		{"Authorize", 5, false},
		{"Unauthorize", 6, false},
		{"RegularKey", 8, false},
		{"NFTokenMinter", 9, false},
		{"EmitCallback", 10, false},
		{"HookAccount", 16, false},
	}},
	{TypeObject, []fieldDefinition{
		{"TransactionMetaData", 2, false},
		{"CreatedNode", 3, false},
		{"DeletedNode", 4, false},
		{"ModifiedNode", 5, false},
		{"PreviousFields", 6, false},
		{"FinalFields", 7, false},
		{"NewFields", 8, false},
		{"TemplateEntry", 9, false},
		{"Memo", 10, false},
		{"SignerEntry", 11, false},
		{"NFToken", 12, false},
		{"EmitDetails", 13, false},
		{"Hook", 14, false},
		{"Signer", 16, false},
		{"Majority", 18, false},
		{"DisabledValidator", 19, false},
		{"EmittedTxn", 20, false},
		{"HookExecution", 21, false},
		{"HookDefinition", 22, false},
		{"HookParameter", 23, false},
		{"HookGrant", 24, false},
		{"VoteEntry", 25, false},
		{"AuctionSlot", 26, false},
		{"AuthAccount", 27, false},
	}},
	{TypeArray, []fieldDefinition{
		{"Signers", 3, true},
		{"SignerEntries", 4, false},
		{"Template", 5, false},
		{"Necessary", 6, false},
		{"Sufficient", 7, false},
		{"AffectedNodes", 8, false},
		{"Memos", 9, false},
		{"NFTokens", 10, false},
		{"Hooks", 11, false},
		{"VoteSlots", 12, false},
		{"Majorities", 16, false},
		{"DisabledValidators", 17, false},
		{"HookExecutions", 18, false},
		{"HookParameters", 19, false},
		{"HookGrants", 20, false},
		{"AuthAccounts", 25, false},
	}},
	{TypeUInt8, []fieldDefinition{
		{"CloseResolution", 1, false},
		{"Method", 2, false},
		{"TransactionResult", 3, false},
		{"TickSize", 16, false},
		{"UNLModifyDisabling", 17, false},
		{"HookResult", 18, false},
	}},
	{TypeHash160, []fieldDefinition{
		{"TakerPaysCurrency", 1, false},
		{"TakerPaysIssuer", 2, false},
		{"TakerGetsCurrency", 3, false},
		{"TakerGetsIssuer", 4, false},
	}},
	{TypePathSet, []fieldDefinition{
		{"Paths", 1, false},
	}},
	{TypeVector256, []fieldDefinition{
		{"Indexes", 1, false},
		{"Hashes", 2, false},
		{"Amendments", 3, false},
		{"NFTokenOffers", 4, false},
	}},
	{TypeIssue, []fieldDefinition{
		{"Asset", 1, false},
		{"Asset2", 2, false},
	}},
	{TypeCurrency, []fieldDefinition{
		{"BaseAsset", 1, false},
		{"QuoteAsset", 2, false},
	}},
}
