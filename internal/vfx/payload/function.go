package payload

// Function is the sub-discriminant carried inside a transaction payload.
type Function string

const (
	FnMint        Function = "Mint()"
	FnTokenDeploy Function = "TokenDeploy()"

	FnTransfer                  Function = "Transfer()"
	FnChangeEvolveStateSpecific Function = "ChangeEvolveStateSpecific()"
	FnEvolve                    Function = "Evolve()"
	FnDevolve                   Function = "Devolve()"

	FnSaleStart    Function = "Sale_Start()"
	FnSaleComplete Function = "Sale_Complete()"

	FnAdnrCreate       Function = "AdnrCreate()"
	FnBTCAdnrCreate    Function = "BTCAdnrCreate()"
	FnAdnrTransfer     Function = "AdnrTransfer()"
	FnBTCAdnrTransfer  Function = "BTCAdnrTransfer()"
	FnAdnrDelete       Function = "AdnrDelete()"
	FnBTCAdnrDelete    Function = "BTCAdnrDelete()"
	FnDecShopCreate    Function = "DecShopCreate()"
	FnDecShopUpdate    Function = "DecShopUpdate()"
	FnDecShopDelete    Function = "DecShopDelete()"
	FnCallBack         Function = "CallBack()"
	FnRecover          Function = "Recover()"
	FnTransferCoin     Function = "TransferCoin()"
	FnTokenMint        Function = "TokenMint()"
	FnTokenBurn        Function = "TokenBurn()"
	FnTokenTransfer    Function = "TokenTransfer()"
	FnTokenOwnerChange Function = "TokenContractOwnerChange()"
	FnTokenPause       Function = "TokenPause()"
	FnTokenBanAddress  Function = "TokenBanAddress()"
	FnTokenTopicCreate Function = "TokenVoteTopicCreate()"
	FnTokenTopicCast   Function = "TokenVoteTopicCast()"
)

// IsEvolve reports whether f changes the evolve state of an NFT.
func (f Function) IsEvolve() bool {
	return f == FnChangeEvolveStateSpecific || f == FnEvolve || f == FnDevolve
}

// IsBTCAdnr reports whether f operates on a BTC-linked domain.
func (f Function) IsBTCAdnr() bool {
	return f == FnBTCAdnrCreate || f == FnBTCAdnrTransfer || f == FnBTCAdnrDelete
}

func oneOf(f Function, allowed ...Function) bool {
	for _, a := range allowed {
		if f == a {
			return true
		}
	}
	return false
}
