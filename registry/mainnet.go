package registry

import "github.com/gagliardetto/solana-go"

// Mainnet solver wallets authorized to fill mint-required GM trades.
var mainnetSolvers = []solana.PublicKey{
	solana.MustPublicKeyFromBase58("DSqMPMsMAbEJVNuPKv1ZFdzt6YvJaDPDddfeW7ajtqds"),
	solana.MustPublicKeyFromBase58("2Cq2RNFFxxPXL7teNQAji1beA2vFbBDYW5BGPBFvoN9m"),
	solana.MustPublicKeyFromBase58("9BB7Tt5uE5VdRsxA5XRqrjwNaq8XtgAUQW8czA6ymUPG"),
}

// GM token mints live on mainnet. Every GM token is a Token-2022 mint with
// 9 decimals.
var mainnetTokens = map[string]string{
	"9wYZetvT8J2ptfsRca5gzLBGvcUug38mp9yT3xaondo": "AALon",
	"123mYEnRLM2LLYsJW3K6oyYh8uP1fngj732iG638ondo": "AAPLon",
	"MFerpBVGKZh2jXN7cbJdXRXQTp6j6pbSnSZrfWrondo": "ABBVon",
	"128qNYovdGv2YqayErcJgU7gDwbNVX1VuoxbtWz8ondo": "ABNBon",
	"129gRoHKhVg7CvPMrqVsEB4uYZo6zV4yDZX6NBg9ondo": "ABTon",
	"KcCVQxG9LhFYP5o9DWFKTFgFShPPQkDEemVbiFyondo": "ACHRon",
	"12LxMMJYVSf4LoeqjFE47BQQNRciaH9E3nbDfjH4ondo": "ACNon",
	"12Rh6JhfW4X5fKP16bbUdb4pcVCKDHFB48x8GG33ondo": "ADBEon",
	"LmTMwmZLNZszn3qpjmnbhfP12U4qWDivaEBwSBSondo": "ADIon",
	"13qTjKx53y6LKGGStiKeieGbnVx3fx1bbwopKFb3ondo": "AGGon",
	"7eRX747PSbVtGVx3qD5UFdkNM2BfTy86ikUiCMhondo": "AMATon",
	"C9xNaNujcF1a5fidWAAFReFYqhLRVbyk4yPyGqzondo": "AMCon",
	"14diAn5z8kjrKwSC8WLqvBqqe5YmihJhjxRxd8Z6ondo": "AMDon",
	"SS6AEWhzRrxhL2cXzKKjhFt3rCzmHHGKmFyugDTondo": "AMGNon",
	"14Tqdo8V1FhzKsE3W2pFsZCzYPQxxupXRcqw9jv6ondo": "AMZNon",
	"Cq6QtvHpXbJWtFaiMhUDtHy8YVZ95gcD1oZ1cohondo": "ANETon",
	"14VXAhoa1R74vi1ZuiQyGLJrnDMfoFBPJSCpGVz3ondo": "APOon",
	"14Z8rQQe2Aza33YgEUmj3g3QGNz8DXLiFPuCnsD1ondo": "APPon",
	"15SsCZqCsM9fZGhTmP4rdJTPT9WGZKazDSsgeQ8ondo": "ARMon",
	"1eLZPRsn8bAKmoxsqDMH9Q2m2k7GMNp6RLSQGm8ondo": "ASMLon",
	"1FWZtdWN7y38BSXGzbs8D6Shk88oL9atDNgbVz9ondo": "AVGOon",
	"1WxT6NdK7uqpfXuKpALxL2n3f7Rq61XXeHA8UM4ondo": "AXPon",
	"1zvb9ELBFShBCWKEk5jRTJAaPAwtVt7quEXx1X4ondo": "BABAon",
	"Wk8gC6iTNp8dqd4ghkJ3h1giiUnyhykwHh7tYWjondo": "BACon",
	"1YVZ4LGpq8CAhpdpm3mgy7GgPb83gJczCpxLUQ3ondo": "BAon",
	"YXE7mph6XhsgnyezkMEcTuohSuWhbLWfwx2Hh6mondo": "BBAIon",
	"54CoRF2FYMZNJg9tS36xq5BUcLZ7rju1r59jGc2ondo": "BIDUon",
	"14kLsQVmc64qZexYuR4XGop9y8BeMkd77pJUm1Rhondo": "BILIon",
	"mhZ69E1vDnAsQJXAwarLYSX5tmgeMajXBJ2rXAcondo": "BINCon",
	"5H1VpMzRuoNtRbPTRCz35ETtEUtnkt8hJuQb9v7ondo": "BLKon",
	"A9PFmw9Hu8zzxDUoU351pio1E1XWBWBfWnjT9qoondo": "BLSHon",
	"MYXqkDYbzr7vjXAz2BapR4AiYRXzoikGirrLoRzondo": "BMNRon",
	"cBnVXDyZgaaLZM18wAmqsUKnRUFAEJWbq6VuUoaondo": "BTGon",
	"bgJWGuQxyoyFeXwzYZKBmoujVdatGFYPNFnv1a6ondo": "BTGOon",
	"doPqjCxi6UkANkvMz5fSuYGEo5PGppVpTZMeB5vondo": "BZon",
	"AErxJJxGbc9cZzZoZepN62BNfg5RXns8tmEc3Zpondo": "CATon",
	"7NWHifsBnn9DimUeNnsHdEXkTZhXmJTiXxcCngBondo": "CEGon",
	"WNZBSkNBNP3Ct1pcFn6Fu4sZQFhnu48EsM9voCEondo": "CIFRon",
	"t71FyTYHVkPAb5g48adDHmkVxXYbUuP2eq6jDZLondo": "CLOAon",
	"ucQ3VfWAx9pkCN4Kg84zE56FtB4FJN2kQH4ArYYondo": "CLOIon",
	"5owVsVFSHACQuippFYdLp3qWRobp2EGcwxMmsr6ondo": "CMGon",
	"R2uDbMtmHq5xSS5SserrovdRKdpiqnVBCd2AHLhondo": "COFon",
	"5u6KDiNJXxX4rGMfYT4BApZQC5CuDNrG6MHkwp1ondo": "COINon",
	"PjtfUiw6Hwd8PZ94EcUw8mBSYxp7SjjzSLeNTDKondo": "Con",
	"X68p9qTpEMkR1TLpXUP2ZJo8PG4Qge2Y2ZLdjA2ondo": "COPon",
	"X7j77hTmjZJbepkXXBcsEapM8qNgdfihkFj6CZ5ondo": "COPXon",
	"6btaz134wjHkR8sqhAYrtSM6tavftfxnRvnyMd8ondo": "COSTon",
	"NKyzy31w2J7odLb2CW3Ft4fpKXkW3LBt1pvpkVLondo": "CPNGon",
	"6xHEyem9hmkGtVq6XGCiQUGpPsHBaoYuYdFNZa5ondo": "CRCLon",
	"7D7ukbcnUNYt7Et5vtsDZhAy28MKu9pkHka1Hp9ondo": "CRMon",
	"cdKfoNjbXgnSuxvoajhtH3uixfZhq1YXhQsS1Rwondo": "CRWDon",
	"7DWcZE1uVc8m2mf9pV8KNov28ET7HsvHkhrhgr9ondo": "CSCOon",
	"FGmUDXqA3AbWfo5b3NUcsvwoUFCF4tr9ea6uercondo": "CVNAon",
	"7tgKziACteG26VjV5xKufojKxwTgCFyTwmWUmz5ondo": "CVXon",
	"83P1gCFBZfGRCwJuBt9juxJKEsZwejJoG66eTZ6ondo": "DASHon",
	"td1aY5AvYQuwGD75qNq9aPipMexraN9mQXJwqifondo": "DBCon",
	"CqQyAZjB9LGFTG95eiadGTkfhd9QA12ProeKsQmondo": "DEon",
	"gnoSQSNTNZHViqVfxCcPDVxcRA29mrJL7C6JqYLondo": "DGRWon",
	"mJf1xT3suXtkXBCfZcE9oUUuyxkvSgqYBWiX7v1ondo": "DISon",
	"12J2LD3tuLfdiVKnWZMHRMrbnXDY9rM4yqVLUa5yondo": "DNNon",
	"916SDKz7y5ZcEZC9CtnQ5Djs1Y8Yv3UAPb6bak8ondo": "EEMon",
	"AbvryMGnaba9oADMZk8Vp2Av6MtczsncGyfWaC4ondo": "EFAon",
	"aheEdmuryJU8ymy8LjYheZH5i2BW1UMsfuWQKD2ondo": "EQIXon",
	"aLDdFsr3VTUQaHFK6yNvQxztvxQ8nxW4AMuSGC7ondo": "FIGon",
	"ZmHxc6Gt27RJKxD2ay6UL4n9yQ7mKAq4XZQUeVhondo": "FIGRon",
	"5hT2o25X9tGXipwhLckaUdgnxrZ6Y8eiUwdhpLeondo": "Fon",
	"ivBnfPTyuHDNWmMSnbavckhJK6SHZW8h77nZKsEondo": "FTGCon",
	"Ao5rKFRQ54W3DKSAtqfhBRPNHewwWRLNLao2JL9ondo": "FUTUon",
	"NrTdGMA3ujUvWXkwXyZKnhoByb32KTjRh5Vo47yondo": "GEMIon",
	"aTBfDuLRqYHBiG82bHA7DzwjSDTFre2dRtGH3S5ondo": "GEon",
	"hWfiw4mcxT8rnNFkk6fsCQSxoxgZ9yVhB6tyeVcondo": "GLDon",
	"aznKt8v32CwYMEcTcB4bGTv8DXWStCpHrcCtyy7ondo": "GMEon",
	"bbahNA5vT9WJeYft8tALrH1LXWffjwqVoUbqYa1ondo": "GOOGLon",
	"m9GcsVgdjaL3KsdtSFHimnhtsUMpTHkjtwEG4Tzondo": "GRABon",
	"Gc1aT3ay7FXL3qdAW7cNSXYPDsGavy7qiACuxwxondo": "GRNDon",
	"BchJRy2snmhJZf3rQ9LJ3ePs2BGfYgfvQNo31d2ondo": "GSon",
	"MtEXKVN3Pcggy8MPA3eJr15H6SK3RXheScqj9qtondo": "HDon",
	"bdh3njeo19d2TBLAKTGvCWdSoArfVw8uZBAJHY4ondo": "HIMSon",
	"BVdXGvmgi6A9oAiwWvBvP76fyTqcCNRJMM7zMN6ondo": "HOODon",
	"c5ug15fwZRfQhhVa6LHscFY33ebVDHcVCezYpj7ondo": "HYGon",
	"M77ZvkZ8zW5udRbuJCbuwSwavRa7bGAZYMTwru8ondo": "IAUon",
	"C8bZkgSxXkyT1RgxByp2teJ24hgimPLoyEYoNa9ondo": "IBMon",
	"C9J9vZ8N79GzzxFoRkPWCkGtMKU8akg4FhUk4r9ondo": "IEFAon",
	"cdVNL7wK8mf1UCDqM6zdrziRv4hmvqWhXeTcck2ondo": "IEMGon",
	"cfPLN9WXD2BTkbZhRZMVXPmVSiRo44hJWRtnaC8ondo": "IJHon",
	"cJpUMp5R7rZ6fGeLHbHhrRuJzK9mkyKDjZqNpT3ondo": "INTCon",
	"CozoH5HBTyyeYSQxHcWpGzd4Sq5XBaKzBzvTtN3ondo": "INTUon",
	"13QHuepdhtJ3urNsV9i1hdL8nQoca2G7ZaLzb5FYondo": "IRENon",
	"1MGRpPrkhEsCm2GCWD3rsvEU77xTTLAzfKXeFgFondo": "ISRGon",
	"CPWkMURVvcnX8hGjqCTb8i5LkzV3VSvyk7SeJi8ondo": "ITOTon",
	"CqW2pd6dCPG9xKZfAsTovzDsMmAGKJSDBNcwM96ondo": "IVVon",
	"dSHPFuMMjZqt7xDYGWrexXTSkdEZAiZngqymQF2ondo": "IWFon",
	"dvj2kKFSyjpnyYSYppgFdAEVfgjMEoQGi9VaV23ondo": "IWMon",
	"DX7g7WNjDpVzNK9CG81v7wb6ZbiNzYfkdzH2Xs5ondo": "IWNon",
	"KZtqx9BJbpcGY7vdzhqPXM3ECKChxE5YhXaDiwRondo": "JAAAon",
	"E1aUS5nyv7kaBzdQzPVJW5zfaMgoUJpKYzdnFS2ondo": "JDon",
	"KUXt7LzHWSQXp5eyqMZRxWjAP6yM8BUh4LRHwiwondo": "JNJon",
	"E5Gczsavxcomqf6Cw1sGCKLabL1xYD2FzKxVoB4ondo": "JPMon",
	"149o8ppQf9SzKCKXZ4v3dzHkwumvtQSRzSEkr29uondo": "KLACon",
	"e6G4pfFcrdKxJuZ4YXixRFfMbpMvgXG2Mjcus71ondo": "KOon",
	"Edik9MoFp8LAXS9HNu2gRFyihwYqDqv4ZmNmVT9ondo": "LINon",
	"v12TwfofSbvVqQ5N5KGG4d3J8rtEi4BjGfn2apyondo": "LIon",
	"eGGxZwNSfuNKRqQLKaz2hc4QkA2mau7skyxPdj7ondo": "LLYon",
	"EoReHwUnGGekbXFHLj5rbCVKiwWqu32GrETMfw4ondo": "LMTon",
	"edLdFJVVR532qhcrNTJjLAmhmyV7NsctbWVokMBondo": "LOWon",
	"wFJoeEYpKg9oRhyJy6BWTT3J95gmXBLvoeikDQNondo": "LRCXon",
	"EsVHcyRxXFJCLMiuYLWhoDygrNe1BJGpYeZ17X7ondo": "MAon",
	"ETCJUmuhs5aY62xgEVWCZ5JR8KPdeXUaJz3LuC5ondo": "MARAon",
	"EUbJjmDt8JA222M91bVLZs211siZ2jzbFArH9N3ondo": "MCDon",
	"EWwdgGshGngcMpDV34pWZRSu5bkAuiKuKTTHKQ8ondo": "MELIon",
	"fDxs5y12E7x7jBwCKBXGqt71uJmCWsAQ3Srkte6ondo": "METAon",
	"XwFm5GiKPVTvPiEbQpdc6vJbFEpsUXRMf6TcSxnondo": "MPon",
	"bn1fb8dwzafGePqNPrM8m8cbAKQiFqeEPuZkPySondo": "MRKon",
	"14VP7DvCAdBCc5XGNZkPt6zhtPzJrWWS64Koxtxyondo": "MRNAon",
	"FovBwhoV5KQjZCdhoM6jgXYwXLX3F8vgAfvmLH7ondo": "MRVLon",
	"FRmH6iRkMr33DLG6zVLR7EM4LojBFAuq6NtFzG6ondo": "MSFTon",
	"FSz4ouiqXpHuGPcpacZfTzbMjScoj5FfzHkiyu2ondo": "MSTRon",
	"R3ywbVQ5t8LNmjQsn2Ngv43dSqyZscQwNag9G3Eondo": "MTZon",
	"Fz9edBpaURPPzpKVRR1A8PENYDEgHqwx5D5th28ondo": "MUon",
	"t7eN6cGwRMFaZvsNW2SmVwkedmHtDdrxA4ycNE5ondo": "NEEon",
	"g4KnPrxPLeeKkwvDmZFMtYQPM64eHeShbD55vK6ondo": "NFLXon",
	"V8LRV7kWjrx6Prke9oHEHNUiR122BVtyuPciTCTondo": "NIKLon",
	"yQ37dFiGAbzrb2FRAEhGNzRy5zFfoYGWYhAepFEondo": "NIOon",
	"g646pcdG2Rt5DH9WZzL7VVnVDWCCMTTrnktwE74ondo": "NKEon",
	"G7pTVoSECz5RQWubEnTP7AC83KHUsSyoiqYR1R2ondo": "NOWon",
	"YeK2TdPtGLAme3Phg4pb1GBN2YxKgX5UNVyD4asondo": "NTESon",
	"gEGtLTPNQ7jcg25zTetkbmF7teoDLcrfTnQfmn2ondo": "NVDAon",
	"GeV7S8vjP8qdYZpdGv2Xi6e7MUMCk8NAAp2z7g5ondo": "NVOon",
	"m6oDLvJT7rY7M1TxuLWP3pWmAPg2cCWDQR1NKiEondo": "OKLOon",
	"7qy1j4Mechfyr6AST3djH4vk4kiEYC2cjEytXdondo": "ONDSon",
	"13qtwy5fZi9Przz14pzo9xqFSr8QHmLyUpUCvP1xondo": "ONon",
	"ou1uE526v7zmUYP2qCb2LJgfXAyWAtWS9SETtr8ondo": "OPENon",
	"gbHFTMkuMQUy5xrgoCBdaQ2XYvNyjWAYcnRPh9Condo": "OPRAon",
	"GmDADFpfwjfzZq9MfCafMDTS69MgVjtzD7Fd9a4ondo": "ORCLon",
	"ThwGDsXZ6iKubWuEQjmDxGwF3bUERDGbBXvcbjFondo": "OSCRon",
	"1GNFMryQ6c9ZpMhgNimmsbtgYM21qnBJgRAFoNiondo": "OXYon",
	"P7hTXnKk2d2DyqWnefp5BSroE1qjjKpKxg9SxQqondo": "PALLon",
	"M7hVQomhw4Q2D2op3HvBrZjHu9SryjNvD5haEZ1ondo": "PANWon",
	"GRciFCqJ5y2hbiD6U5mGkohY65BZTXGuGUrCqf7ondo": "PBRon",
	"UP5s1srLaHDc4SwJqLPa3A48x5R7ofN3hZWxWEZondo": "PCGon",
	"M6agiXbNgy8Xon9ngiW4ZDPbMFcNCTMkMMkshZyondo": "PDBCon",
	"PnjETBCLC318DRejo9cMQKAmET9PvW8AEFGWMNtondo": "PDDon",
	"gud6b3fYekjhMG5F818BALwbg2vt4JKoow59Md9ondo": "PEPon",
	"Gwh9fPsX1qWATXy63vNaJnAFfwebWQtZaVmPko6ondo": "PFEon",
	"GZ8v4NdSG7CTRZqHMgNsTPRULeVi8CpdWd9wZY8ondo": "PGon",
	"sxyg1VTSzy5zYANUK7hntNtmFAWoXGJq95AcHuVondo": "PINSon",
	"HfsnTS5qtdStwec9DfBrunRqnAMYMMz1kjv9Hu9ondo": "PLTRon",
	"TnfswqdE1jAJ8sfnf5J7kSVLEH1cfpAYZ8MWmKfondo": "PLUGon",
	"qKtU9A7ij34XmtxaSzYfxCpkgAZzzFsqnUb2kW2ondo": "PSQon",
	"hM7B3UQTTR81mS27SxDDPzBbjejmo8fnpFjzgv9ondo": "PYPLon",
	"hqJXutLF6f7DxStrWCrnZDfXzbNTZmvi3KheVi6ondo": "QBTSon",
	"hrmX7MV5hifoaBVjnrdpz698yABxrbBNAcWtWo9ondo": "QCOMon",
	"HrYNm6jTQ71LoFphjVKBTdAE4uja7WsmLG8VxB8ondo": "QQQon",
	"HXFrTf9v9NdjGUTnx4sojR3Cf92hoBsQFUxKTN7ondo": "RDDTon",
	"tiitb2Z1HtpB2DpVr6V7tdCFS3jmTinLeuGj9EVondo": "REMXon",
	"dwEPNKQab3iwRmjGvZPXhAmws1W5NsQGwuXwi8oondo": "RGTIon",
	"i6f3DvZBuLpnGSqS8x6WPeStJ7jNe5KewD6afD5ondo": "RIOTon",
	"AXRsYFt7TXNQ3DcY6BkvRgPV6VsYMURyDtaeudjondo": "RIVNon",
	"12BvLZtzjdssAycxPeBQUjukhmgQpULAvy6SroYdondo": "RTXon",
	"iLDu2jjp2i3Uqc2Vm7K7GLiUj3hR4Un49MtD7c4ondo": "SBETon",
	"iPFqjcZQTNMNXA4kbShbMhfAVD8yr8Uq9UtXMV6ondo": "SBUXon",
	"cnc6M1zXLdrGR5LAQVcaJDfgezMiVWNtGQsVy1Kondo": "SCHWon",
	"HjrN6ChZK2QRL6hMXayjGPLFvxhgjwKEy135VRjondo": "SGOVon",
	"ivdDracs2s7jCP698dJXKSEQdVrNj9hasJL1Uq1ondo": "SHOPon",
	"iy11ytbSGcUnrjE6Lfv78TFqxKyUESfku1FugS9ondo": "SLVon",
	"jLca79XzcewRuBZyaJxVxuKpUHcEix1X4CP1RP9ondo": "SMCIon",
	"a2cXfonVgQ6cKB4Lm8YZsPry39VZSA562bwmRSiondo": "SNAPon",
	"JmFLCBwoNvcXy6B2VqABg6m784ubkXpaEx3p7S5ondo": "SNOWon",
	"mqL8yXQpeSvc7NgrAtLLPtRvUiWyLoG5RWLv16iondo": "SOFIon",
	"aKzjn2ZdWySSGPSSDTY2HUpcSCmemSahTXihrpyondo": "SOon",
	"vE2qArmjto6VfeMngyGAnzp2ipLYeXsxiARDnnXondo": "SOUNon",
	"JrTYw7A9jihX5TwpRStYviEbsYf2X2VJpZ13719ondo": "SPGIon",
	"jzCvs2Pk8tDcfsFRqnEMjurgaQW4iQfEkandUR8ondo": "SPOTon",
	"k18WJUULWheRkSpSquYGdNNmtuE2Vbw1hpuUi92ondo": "SPYon",
	"D1tu7Fnm3cCpKyyPXrqm5GXShPqMj7a2SEjjq9fondo": "SQQQon",
	"9PMjLqd8zPdKkJUXarnit5t7tPL3cCscwHzy7ATondo": "TCOMon",
	"k6BPp2Xmf2TYgrZiUyWfUoZBKeqaDbvPoAVgSx2ondo": "TIPon",
	"RTb54gpqAx6RpLAHRGnqQ3ciQ845CHqhg21ZzEJondo": "TLNon",
	"KaSLSWByKy6b9FrCYXPEJoHmLpuFZtTCJk1F1Z9ondo": "TLTon",
	"kbmF7ERJWMaaDswMprrH9gHSLya5D2RMBNgKqg3ondo": "TMon",
	"T699bgtXQw4CJ59rQ4VzLsupVQUzoL5RmuhHnKrondo": "TMOon",
	"pDY4GPJfZcNETPG7myXeafQfgJqqVkn81bMYDyfondo": "TMUSon",
	"WKMZummev5UcXz5nNKQZvTD6QjNSM2X58uwmDReondo": "Ton",
	"14W1itEkV7k1W819mLSknFTaMmkCtPokbF2tRkPUondo": "TQQQon",
	"KeGv7bsfR4MheC1CkmnAVceoApjrkvBhHYjWb67ondo": "TSLAon",
	"keybg184d4vyXeQdFqs4o99YsMg7xBthxTJ6Ky3ondo": "TSMon",
	"81xLFvCzFaUM3KDxSHC75pXu3RPCeSeCbmGBY8aondo": "TXNon",
	"KJNeFW3kk3ycPjXpC6cbuyckjeYHacc2ekhtAi5ondo": "UBERon",
	"kPBGL8vAwKN3UGmr9cjkM2dU79SC3nzTC9yu7F8ondo": "UNHon",
	"o6U1Sm6Vd7EofMyCrL28mrp2QLzgYGgjveHiEQ5ondo": "USFRon",
	"rpydAzWdCy85HEmoQkH5PVxYtDYQWjmLxgHHadxondo": "USOon",
	"kxEW4oJL75K37VeXaZF1ynbHQATQwhECQKN1374ondo": "Von",
	"MkN2TZSYTFBdMRLf9EVcfhstTwnazH8knd9hpepondo": "VRTon",
	"h6MW8GFpfzxFa1JNn6hZNnBF3t4fj9SHAXKy6LXondo": "VSTon",
	"jCCU4GwukjNxAXJowG2S4KCrr5g6YyUB61WHYvGondo": "VTIon",
	"KuiYLPVq65qixD9TgvxBC576C4gG6vVTCdbh2zFondo": "VTVon",
	"igu1coP6n3GPaWmbd8J9Z7UAyLpV254uQFFNfydondo": "VZon",
	"L6ZE5qCpVVSqLePz64CrwkgyWoPF9M7tB8BeFH4ondo": "WFCon",
	"LZddqAqKqJW9oMZSjTxCUmbmzBRQtv9gMkD9hZ3ondo": "WMTon",
	"exYfSJt6Fgfhfnp3bAD4roYy97hLF9npjYaLyEXondo": "WULFon",
	"qCYD74QnXzd9pzv6pGHQKJVwoibL6sNcPQDnpDiondo": "XOMon",
	"BWxe2FVciUbwrCUZQPUKiREBh5LmVa5AiUqNLAkondo": "XYZon",
}

// Mainnet returns the production registry: the full GM token table and the
// authorized solver set.
func Mainnet() *Registry {
	tokens := make(map[solana.PublicKey]TokenInfo, len(mainnetTokens))
	for addr, symbol := range mainnetTokens {
		tokens[solana.MustPublicKeyFromBase58(addr)] = TokenInfo{Symbol: symbol, Decimals: 9}
	}
	return New(tokens, mainnetSolvers)
}
