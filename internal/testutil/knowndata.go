// Package testutil holds known transaction vectors shared by tests.
package testutil

// KnownItem pairs the JSON form of an object with its canonical hex.
type KnownItem struct {
	JSON string
	Hex  string
}

var (
	// SignedTx is a signed Payment and its canonical bytes.
	SignedTx = KnownItem{
		JSON: `{
		   "Account": "rG1QQv2nh2gr7RCZ1P8YYcBUKCCN633jCn",
		   "Amount": {
		      "currency": "USD",
		      "issuer": "rhub8VRN55s94qWKDv6jmDy1pUykJzF3wq",
		      "value": "123400000"
		   },
		   "Destination": "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh",
		   "Fee": "100",
		   "Flags": 2147483648,
		   "SendMax": {
		      "currency": "CNY",
		      "issuer": "razqQKzJRdB4UxFPWf5NEpEG3WMkmwgcXA",
		      "value": "5678900000000000e-4"
		   },
		   "Sequence": 18,
		   "SigningPubKey": "0388935426E0D08083314842EDFBB2D517BD47699F9A4527318A8E10468C97C052",
		   "TransactionType": "Payment",
		   "TxnSignature": "3044022030425DB6A46B5B57BDA85E5B8455B90DC4EC57BA1A707AF0C28DC9383E09643D0220195B9FDBE383B813A539F3B70E130482E92D1E1210B0F85551E11B3F81EB98BB",
		   "hash": "F2D008D2AABBABD2A882F9049AA873210908EC3EA1EB0A2044A66093C7ACD2B1"
		}`,
		Hex: "1200002280000000240000001261D684625103A7200000000000000000000000" +
			"000055534400000000002ADB0B3959D60A6E6991F729E1918B71639252306840" +
			"0000000000006469D7542CEDF1370800000000000000000000000000434E5900" +
			"0000000041C8BE2C0A6AA17471B9F6D0AF92AAB1C94D5A2573210388935426E0" +
			"D08083314842EDFBB2D517BD47699F9A4527318A8E10468C97C0527446304402" +
			"2030425DB6A46B5B57BDA85E5B8455B90DC4EC57BA1A707AF0C28DC9383E0964" +
			"3D0220195B9FDBE383B813A539F3B70E130482E92D1E1210B0F85551E11B3F81" +
			"EB98BB8114AE123A8556F3CF91154711376AFB0F894F832B3D8314B5F762798A" +
			"53D543A014CAF8B297CFF8F2F937E8",
	}

	// UnsignedTx is the same Payment from another account, without signing fields.
	UnsignedTx = KnownItem{
		JSON: `{
		   "Account": "r9mC1zjD9u5SJXw56pdPhxoDSHaiNcisET",
		   "Amount": {
		      "currency": "USD",
		      "issuer": "rhub8VRN55s94qWKDv6jmDy1pUykJzF3wq",
		      "value": "123400000"
		   },
		   "Destination": "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh",
		   "Fee": "100",
		   "Flags": 2147483648,
		   "SendMax": {
		      "currency": "CNY",
		      "issuer": "razqQKzJRdB4UxFPWf5NEpEG3WMkmwgcXA",
		      "value": "5678900000000000e-4"
		   },
		   "Sequence": 18,
		   "TransactionType": "Payment"
		}`,
		Hex: "1200002280000000240000001261D684625103A7200000000000000000000000" +
			"000055534400000000002ADB0B3959D60A6E6991F729E1918B71639252306840" +
			"0000000000006469D7542CEDF1370800000000000000000000000000434E5900" +
			"0000000041C8BE2C0A6AA17471B9F6D0AF92AAB1C94D5A2581146033C369F072" +
			"3DAE44A22957D7EF492CC5F80A2D8314B5F762798A53D543A014CAF8B297CFF8" +
			"F2F937E8",
	}

	// Metadata is the metadata of a ledger transaction.
	Metadata = KnownItem{
		JSON: `{
		   "AffectedNodes": [
		      {
		         "CreatedNode": {
		            "LedgerEntryType": "Offer",
		            "LedgerIndex": "7EAEE1B418DC7C00FC41E8DE6BA4FC0D79CD6F7476D44B3D99B2346F3A78FE96",
		            "NewFields": {
		               "Account": "rH3uSRUJYoJhK4kL9x1mzUhDimKE2n3oT6",
		               "BookDirectory": "BC05A0B94DB6C7C0B2D9E04573F0463DC15DB8033ABA85624D0CE3BAC8E0468B",
		               "OwnerNode": "00000000000000FB",
		               "Sequence": 4330215,
		               "TakerGets": "80000000000",
		               "TakerPays": {
		                  "currency": "EUR",
		                  "issuer": "rhub8VRN55s94qWKDv6jmDy1pUykJzF3wq",
		                  "value": "2902.472875273122"
		               }
		            }
		         }
		      },
		      {
		         "DeletedNode": {
		            "FinalFields": {
		               "Account": "rH3uSRUJYoJhK4kL9x1mzUhDimKE2n3oT6",
		               "BookDirectory": "BC05A0B94DB6C7C0B2D9E04573F0463DC15DB8033ABA85624D0CE3CBADF66AFE",
		               "BookNode": "0000000000000000",
		               "Flags": 0,
		               "OwnerNode": "00000000000000FB",
		               "PreviousTxnID": "70F1E60F21B2A49ECBFE2D19E2867E28D7C8F210E111A58F1C68541F71FBCFE3",
		               "PreviousTxnLgrSeq": 28812537,
		               "Sequence": 4330209,
		               "TakerGets": "80000000000",
		               "TakerPays": {
		                  "currency": "EUR",
		                  "issuer": "rhub8VRN55s94qWKDv6jmDy1pUykJzF3wq",
		                  "value": "2902.530925601381"
		               }
		            },
		            "LedgerEntryType": "Offer",
		            "LedgerIndex": "8C2BEAAC384B373313F4E3E736A1C933B40E1AACB9D78B9F363BBF6D9A4CCA60"
		         }
		      },
		      {
		         "ModifiedNode": {
		            "FinalFields": {
		               "Account": "rH3uSRUJYoJhK4kL9x1mzUhDimKE2n3oT6",
		               "Balance": "104439515445",
		               "Flags": 0,
		               "OwnerCount": 23,
		               "Sequence": 4330216
		            },
		            "LedgerEntryType": "AccountRoot",
		            "LedgerIndex": "94BAA26006FDE92FFDFD1EBBD162F38532C411004A04842C9DAC0E37FF24F371",
		            "PreviousFields": {
		               "Balance": "104439515731",
		               "Sequence": 4330215
		            },
		            "PreviousTxnID": "9CD12991D25C792CA14DE4FAFCA1E55A59CA82BA7F1E045BCC212807CCBCC928",
		            "PreviousTxnLgrSeq": 28812537
		         }
		      },
		      {
		         "ModifiedNode": {
		            "FinalFields": {
		               "Flags": 0,
		               "IndexPrevious": "0000000000000000",
		               "Owner": "rH3uSRUJYoJhK4kL9x1mzUhDimKE2n3oT6",
		               "RootIndex": "FF060B902D93027D3C91161AB9534D1144ABAA309C2FD848783F5A3B9A11A80C"
		            },
		            "LedgerEntryType": "DirectoryNode",
		            "LedgerIndex": "A283077E7F53AEBE1EBE2FA6A5302C0594B34B6B6C04CB4972678B46F688756A"
		         }
		      },
		      {
		         "ModifiedNode": {
		            "FinalFields": {
		               "ExchangeRate": "4D0CE3BAC8E0468B",
		               "Flags": 0,
		               "RootIndex": "BC05A0B94DB6C7C0B2D9E04573F0463DC15DB8033ABA85624D0CE3BAC8E0468B",
		               "TakerGetsCurrency": "0000000000000000000000000000000000000000",
		               "TakerGetsIssuer": "0000000000000000000000000000000000000000",
		               "TakerPaysCurrency": "0000000000000000000000004555520000000000",
		               "TakerPaysIssuer": "2ADB0B3959D60A6E6991F729E1918B7163925230"
		            },
		            "LedgerEntryType": "DirectoryNode",
		            "LedgerIndex": "BC05A0B94DB6C7C0B2D9E04573F0463DC15DB8033ABA85624D0CE3BAC8E0468B"
		         }
		      },
		      {
		         "DeletedNode": {
		            "FinalFields": {
		               "ExchangeRate": "4D0CE3CBADF66AFE",
		               "Flags": 0,
		               "RootIndex": "BC05A0B94DB6C7C0B2D9E04573F0463DC15DB8033ABA85624D0CE3CBADF66AFE",
		               "TakerGetsCurrency": "0000000000000000000000000000000000000000",
		               "TakerGetsIssuer": "0000000000000000000000000000000000000000",
		               "TakerPaysCurrency": "0000000000000000000000004555520000000000",
		               "TakerPaysIssuer": "2ADB0B3959D60A6E6991F729E1918B7163925230"
		            },
		            "LedgerEntryType": "DirectoryNode",
		            "LedgerIndex": "BC05A0B94DB6C7C0B2D9E04573F0463DC15DB8033ABA85624D0CE3CBADF66AFE"
		         }
		      }
		   ],
		   "TransactionIndex": 21,
		   "TransactionResult": "tesSUCCESS"
		}`,
		Hex: "201C00000015F8E311006F567EAEE1B418DC7C00FC41E8DE6BA4FC0D79CD6F74" +
			"76D44B3D99B2346F3A78FE96E824004212E73400000000000000FB5010BC05A0" +
			"B94DB6C7C0B2D9E04573F0463DC15DB8033ABA85624D0CE3BAC8E0468B64D54A" +
			"4FC8A0B36BA200000000000000000000000045555200000000002ADB0B3959D6" +
			"0A6E6991F729E1918B71639252306540000012A05F20008114B100B28F60C3A4" +
			"25467387913CC0B297D3DA702CE1E1E411006F568C2BEAAC384B373313F4E3E7" +
			"36A1C933B40E1AACB9D78B9F363BBF6D9A4CCA60E7220000000024004212E125" +
			"01B7A4F93300000000000000003400000000000000FB5570F1E60F21B2A49ECB" +
			"FE2D19E2867E28D7C8F210E111A58F1C68541F71FBCFE35010BC05A0B94DB6C7" +
			"C0B2D9E04573F0463DC15DB8033ABA85624D0CE3CBADF66AFE64D54A4FD624C5" +
			"226500000000000000000000000045555200000000002ADB0B3959D60A6E6991" +
			"F729E1918B71639252306540000012A05F20008114B100B28F60C3A425467387" +
			"913CC0B297D3DA702CE1E1E51100612501B7A4F9559CD12991D25C792CA14DE4" +
			"FAFCA1E55A59CA82BA7F1E045BCC212807CCBCC9285694BAA26006FDE92FFDFD" +
			"1EBBD162F38532C411004A04842C9DAC0E37FF24F371E624004212E762400000" +
			"1851148A53E1E7220000000024004212E82D0000001762400000185114893581" +
			"14B100B28F60C3A425467387913CC0B297D3DA702CE1E1E511006456A283077E" +
			"7F53AEBE1EBE2FA6A5302C0594B34B6B6C04CB4972678B46F688756AE7220000" +
			"000032000000000000000058FF060B902D93027D3C91161AB9534D1144ABAA30" +
			"9C2FD848783F5A3B9A11A80C8214B100B28F60C3A425467387913CC0B297D3DA" +
			"702CE1E1E511006456BC05A0B94DB6C7C0B2D9E04573F0463DC15DB8033ABA85" +
			"624D0CE3BAC8E0468BE72200000000364D0CE3BAC8E0468B58BC05A0B94DB6C7" +
			"C0B2D9E04573F0463DC15DB8033ABA85624D0CE3BAC8E0468B01110000000000" +
			"00000000000000455552000000000002112ADB0B3959D60A6E6991F729E1918B" +
			"7163925230031100000000000000000000000000000000000000000411000000" +
			"0000000000000000000000000000000000E1E1E411006456BC05A0B94DB6C7C0" +
			"B2D9E04573F0463DC15DB8033ABA85624D0CE3CBADF66AFEE72200000000364D" +
			"0CE3CBADF66AFE58BC05A0B94DB6C7C0B2D9E04573F0463DC15DB8033ABA8562" +
			"4D0CE3CBADF66AFE011100000000000000000000000045555200000000000211" +
			"2ADB0B3959D60A6E6991F729E1918B7163925230031100000000000000000000" +
			"0000000000000000000004110000000000000000000000000000000000000000" +
			"E1E1F1031000",
	}
)

// SignerVector is the entry a known key adds to the Signers array and the
// transaction id that results.
type SignerVector struct {
	Account   string
	PublicKey string
	Signature string
	TxHash    string
}

// SigningVectors are produced from SignedTx: its Account is replaced by
// the "alice" account and it is single signed by "alice", then multi
// signed by "bob" and by "masterpassphrase".
type SigningVectors struct {
	KeyType          string
	AliceAccount     string
	AlicePubKey      string
	AliceSig         string
	Bob              SignerVector
	Masterpassphrase SignerVector
}

var (
	Secp256k1Vectors = SigningVectors{
		KeyType:      "secp256k1",
		AliceAccount: "rG1QQv2nh2gr7RCZ1P8YYcBUKCCN633jCn",
		AlicePubKey:  "0388935426E0D08083314842EDFBB2D517BD47699F9A4527318A8E10468C97C052",
		AliceSig: "3044022030425DB6A46B5B57BDA85E5B8455B90DC4EC57BA1A707AF0C28DC9383E09643D" +
			"0220195B9FDBE383B813A539F3B70E130482E92D1E1210B0F85551E11B3F81EB98BB",
		Bob: SignerVector{
			Account:   "rPMh7Pi9ct699iZUTWaytJUoHcJ7cgyziK",
			PublicKey: "02691AC5AE1C4C333AE5DF8A93BDC495F0EEBFC6DB0DA7EB6EF808F3AFC006E3FE",
			Signature: "304402200719B97DA805D72C51100ECFEA86F73B7AC787559E1AB34285C82CD0C7EC0A14" +
				"02206EDDE8077DB49F808ED1BFC66CC06B944A11F05B58D59247B027B40F04E95412",
			TxHash: "D955B668EF36A0E100D283CD8186F6B686EC140F10F3E5680E3E53C1166DDBAB",
		},
		Masterpassphrase: SignerVector{
			Account:   "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh",
			PublicKey: "0330E7FC9D56BB25D6893BA3F317AE5BCF33B3291BD63DB32654A313222F7FD020",
			Signature: "3045022100C2496C05E17E3239837D7404F715A1C932FE286A0540460D13E8BF4C9E4A7E38" +
				"02205A3CED19AB8D924E8BDBD3F14D74B6AB35BEDD62CEC936F138C35AC4EAFDBD83",
			TxHash: "49D28003A776A7099EEEF64C35646AE4338E3D9065AE6A6A5DBFFE4BDAEB260E",
		},
	}

	Ed25519Vectors = SigningVectors{
		KeyType:      "ed25519",
		AliceAccount: "r9mC1zjD9u5SJXw56pdPhxoDSHaiNcisET",
		AlicePubKey:  "ED4A9D72F2557B714713DC8BA7C6F9576BCC06117A52F6C32F1E26FEEF9819EC8E",
		AliceSig: "0751E8D38C26E8B6C953766A8A58570CA0CB93E57B86047F1FEF8DA3D79DFB97" +
			"E78F4E59365C88EEE0E94EF7C1A2155A828B239AC00F3E95802D851ABB113F06",
		Bob: SignerVector{
			Account:   "rJy554HmWFFJQGnRfZuoo8nV97XSMq77h7",
			PublicKey: "ED3CC3D14FD80C213BC92A98AFE13A405A030F845EDCFD5E395286A6E9E62BA638",
			Signature: "D12E9335B9AADAB917E65F5E3DB4B8A37DB0F5F5DC2E7333FF26A8E5FEEC203D" +
				"1F65ACADE6E6D0BD8E01D21C1838DF005E669AC1C8E57CA41405374CEDBB2309",
			TxHash: "3CBBC2E5BA25609BC71B6380C1853CA73F39BC1E094232B3CBBB7B2FBBC0347E",
		},
		Masterpassphrase: SignerVector{
			Account:   "rGWrZyQqhTp9Xu7G5Pkayo7bXjH4k4QYpf",
			PublicKey: "EDAAC3F98BB94F451804EF5993C847DAAA4E6154F455635659D88AA5C80F156303",
			Signature: "95103211B25FD07976C76D1BD0B205B37887F9F3799BA914021B40A6906723F4" +
				"7A78B66E141204E0123660F8C9D0B3F1263A8119F4523EDB3FE6C594BFBA3603",
			TxHash: "3FE5058B1D802309DF7360A2155A97EF7A5E4213976E4E21D1FB154FDFC0BCCF",
		},
	}
)
