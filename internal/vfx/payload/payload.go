// Package payload turns the opaque data field of a transaction into a typed value.
//
// Each transaction type maps to one payload struct, and each struct only accepts the
// functions that make sense for it. Anything else is rejected with ErrQuarantined so
// callers can record the transaction and move on.
package payload

import (
	"strings"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/goccy/go-json"
	"github.com/goodnatureofminers/vfxledger/internal/vfx/model"
	"github.com/shopspring/decimal"
)

// Payload is implemented by every typed payload.
type Payload interface {
	Func() Function
}

type (
	// Mint is carried by NFT_MINT and TKNZ_MINT.
	Mint struct {
		ContractUID string
		Function    Function
	}

	// NftTransfer is carried by NFT_TX.
	NftTransfer struct {
		ContractUID string
		Function    Function
	}

	// NftBurn is carried by NFT_BURN.
	NftBurn struct {
		ContractUID string
		Function    Function
	}

	// Sale is carried by NFT_SALE.
	Sale struct {
		ContractUID  string
		Function     Function
		Transactions []SaleSubTransaction
	}

	// SaleSubTransaction is one settlement leg of a completed sale.
	SaleSubTransaction struct {
		ToAddress   string          `json:"ToAddress"`
		FromAddress *string         `json:"FromAddress"`
		Amount      decimal.Decimal `json:"Amount"`
		Fee         decimal.Decimal `json:"Fee"`
	}

	// Adnr is carried by ADDRESS.
	Adnr struct {
		Function       Function
		Name           string
		BTCAddress     string
		BTCToAddress   string
		BTCFromAddress string
	}

	// Shop is carried by DST_REGISTRATION.
	Shop struct {
		Function Function
		URL      string
		DecShop  json.RawMessage
		UniqueID string
	}

	// Reserve is carried by RESERVE.
	Reserve struct {
		Function        Function
		Hash            string
		RecoveryAddress string
	}

	// Token is carried by FTKN_MINT, FTKN_TX and FTKN_BURN.
	Token struct {
		ContractUID string
		Function    Function
		FromAddress string
		ToAddress   string
		Amount      decimal.Decimal
		Pause       bool
		BanAddress  string
		Topic       VoteTopic
		TopicUID    string
		VoteYes     bool
	}

	// VoteTopic describes a token governance topic.
	VoteTopic struct {
		TopicUID               string          `json:"TopicUID"`
		TopicName              string          `json:"TopicName"`
		TopicDescription       string          `json:"TopicDescription"`
		MinimumVoteRequirement decimal.Decimal `json:"MinimumVoteRequirement"`
		TopicCreateDate        int64           `json:"TopicCreateDate"`
		VotingEndDate          int64           `json:"VotingEndDate"`
	}

	// Vbtc is carried by TKNZ_TX.
	Vbtc struct {
		ContractUID string
		Function    Function
		Amount      decimal.Decimal
	}
)

func (p Mint) Func() Function        { return p.Function }
func (p NftTransfer) Func() Function { return p.Function }
func (p NftBurn) Func() Function     { return p.Function }
func (p Sale) Func() Function        { return p.Function }
func (p Adnr) Func() Function        { return p.Function }
func (p Shop) Func() Function        { return p.Function }
func (p Reserve) Func() Function     { return p.Function }
func (p Token) Func() Function       { return p.Function }
func (p Vbtc) Func() Function        { return p.Function }

// Domain returns the normalized domain name, with the .btc or .vfx suffix applied.
func (p Adnr) Domain() string {
	if p.Name == "" {
		return ""
	}
	if p.Function.IsBTCAdnr() {
		if strings.Contains(p.Name, ".btc") {
			return p.Name
		}
		return p.Name + ".btc"
	}
	if strings.Contains(p.Name, ".vfx") {
		return p.Name
	}
	return p.Name + ".vfx"
}

// InvalidBTCAddresses returns the BTC addresses in p that do not decode for params.
func (p Adnr) InvalidBTCAddresses(params *chaincfg.Params) []string {
	var invalid []string
	for _, addr := range []string{p.BTCAddress, p.BTCToAddress, p.BTCFromAddress} {
		if addr == "" {
			continue
		}
		if _, err := btcutil.DecodeAddress(addr, params); err != nil {
			invalid = append(invalid, addr)
		}
	}
	return invalid
}

// BTCParams returns the bitcoin parameters paired with network.
func BTCParams(network model.Network) *chaincfg.Params {
	if network == model.Testnet {
		return &chaincfg.TestNet3Params
	}
	return &chaincfg.MainNetParams
}

// Parse decodes data according to t. Types without payload semantics return nil.
func Parse(t model.TransactionType, data string) (Payload, error) {
	switch t {
	case model.TxNftMint, model.TxTokenizedMint:
		return parseMint(data)
	case model.TxNftTransfer:
		return parseNftTransfer(data)
	case model.TxNftBurn:
		return parseNftBurn(data)
	case model.TxNftSale:
		return parseSale(data)
	case model.TxAddress:
		return parseAdnr(data)
	case model.TxDstRegistration:
		return parseShop(data)
	case model.TxReserve:
		return parseReserve(data)
	case model.TxFungibleTokenMint, model.TxFungibleTokenTransfer, model.TxFungibleTokenBurn:
		return parseToken(data)
	case model.TxTokenizedTransfer:
		return parseVbtc(data)
	default:
		if !t.Valid() {
			return nil, quarantine("unknown transaction type %d", int(t))
		}
		return nil, nil
	}
}

type contractRef struct {
	ContractUID string   `json:"ContractUID"`
	Function    Function `json:"Function"`
}

func parseContractRef(data string) (contractRef, error) {
	var ref contractRef
	if err := decodeFirst(data, &ref); err != nil {
		return ref, err
	}
	if ref.ContractUID == "" {
		return ref, quarantine("missing ContractUID")
	}
	return ref, nil
}

func parseMint(data string) (Payload, error) {
	ref, err := parseContractRef(data)
	if err != nil {
		return nil, err
	}
	if ref.Function == "" {
		return nil, quarantine("mint %s: missing Function", ref.ContractUID)
	}
	return Mint{ContractUID: ref.ContractUID, Function: ref.Function}, nil
}

func parseNftTransfer(data string) (Payload, error) {
	ref, err := parseContractRef(data)
	if err != nil {
		return nil, err
	}
	if ref.Function != FnTransfer && !ref.Function.IsEvolve() {
		return nil, quarantine("nft transfer %s: unsupported function %q", ref.ContractUID, ref.Function)
	}
	return NftTransfer{ContractUID: ref.ContractUID, Function: ref.Function}, nil
}

func parseNftBurn(data string) (Payload, error) {
	ref, err := parseContractRef(data)
	if err != nil {
		return nil, err
	}
	return NftBurn{ContractUID: ref.ContractUID, Function: ref.Function}, nil
}

type rawSale struct {
	ContractUID  string               `json:"ContractUID"`
	Function     Function             `json:"Function"`
	Transactions []SaleSubTransaction `json:"Transactions"`
}

func parseSale(data string) (Payload, error) {
	var raw rawSale
	if err := decodeFirst(data, &raw); err != nil {
		return nil, err
	}
	if !oneOf(raw.Function, FnSaleStart, FnSaleComplete) {
		return nil, quarantine("sale: unsupported function %q", raw.Function)
	}
	if raw.ContractUID == "" {
		return nil, quarantine("sale: missing ContractUID")
	}
	return Sale(raw), nil
}

// SaleSubTransactions returns the settlement legs of a completed sale payload. Payloads for
// other functions yield no legs. The legs move value on their own, so a payload without a
// ContractUID still yields them.
func SaleSubTransactions(data string) ([]SaleSubTransaction, error) {
	var raw rawSale
	if err := decodeFirst(data, &raw); err != nil {
		return nil, err
	}
	if raw.Function != FnSaleComplete {
		return nil, nil
	}
	return raw.Transactions, nil
}

type rawAdnr struct {
	Function       Function `json:"Function"`
	Name           string   `json:"Name"`
	BTCAddress     string   `json:"BTCAddress"`
	BTCToAddress   string   `json:"BTCToAddress"`
	BTCFromAddress string   `json:"BTCFromAddress"`
}

func parseAdnr(data string) (Payload, error) {
	var raw rawAdnr
	if err := decodeFirst(data, &raw); err != nil {
		return nil, err
	}

	switch raw.Function {
	case FnAdnrCreate, FnBTCAdnrCreate, FnAdnrTransfer, FnAdnrDelete:
		if raw.Name == "" {
			return nil, quarantine("adnr %s: missing Name", raw.Function)
		}
	case FnBTCAdnrTransfer:
		if raw.BTCFromAddress == "" || raw.BTCToAddress == "" {
			return nil, quarantine("adnr %s: missing BTC addresses", raw.Function)
		}
	case FnBTCAdnrDelete:
	default:
		return nil, quarantine("adnr: unsupported function %q", raw.Function)
	}
	return Adnr(raw), nil
}

type rawShop struct {
	Function Function        `json:"Function"`
	DecShop  json.RawMessage `json:"DecShop"`
	UniqueID string          `json:"UniqueId"`
}

func parseShop(data string) (Payload, error) {
	var raw rawShop
	if err := decodeFirst(data, &raw); err != nil {
		return nil, err
	}

	p := Shop{Function: raw.Function, DecShop: raw.DecShop, UniqueID: raw.UniqueID}
	switch raw.Function {
	case FnDecShopCreate, FnDecShopUpdate:
		var shop struct {
			DecShopURL string `json:"DecShopURL"`
		}
		if len(raw.DecShop) == 0 {
			return nil, quarantine("shop %s: missing DecShop", raw.Function)
		}
		if err := json.Unmarshal(raw.DecShop, &shop); err != nil {
			return nil, quarantine("shop %s: decode DecShop: %v", raw.Function, err)
		}
		if shop.DecShopURL == "" {
			return nil, quarantine("shop %s: missing DecShopURL", raw.Function)
		}
		p.URL = shop.DecShopURL
	case FnDecShopDelete:
		if raw.UniqueID == "" {
			return nil, quarantine("shop %s: missing UniqueId", raw.Function)
		}
	default:
		return nil, quarantine("shop: unsupported function %q", raw.Function)
	}
	return p, nil
}

type rawReserve struct {
	Function        Function `json:"Function"`
	Hash            string   `json:"Hash"`
	RecoveryAddress string   `json:"RecoveryAddress"`
}

func parseReserve(data string) (Payload, error) {
	var raw rawReserve
	if err := decodeFirst(data, &raw); err != nil {
		return nil, err
	}

	switch raw.Function {
	case FnCallBack:
		if raw.Hash == "" {
			return nil, quarantine("reserve callback: missing Hash")
		}
	case FnRecover:
		if raw.RecoveryAddress == "" {
			return nil, quarantine("reserve recover: missing RecoveryAddress")
		}
	default:
		return nil, quarantine("reserve: unsupported function %q", raw.Function)
	}
	return Reserve(raw), nil
}

type rawToken struct {
	ContractUID    string           `json:"ContractUID"`
	Function       Function         `json:"Function"`
	FromAddress    string           `json:"FromAddress"`
	ToAddress      string           `json:"ToAddress"`
	Amount         *decimal.Decimal `json:"Amount"`
	Pause          *bool            `json:"Pause"`
	BanAddress     string           `json:"BanAddress"`
	TokenVoteTopic *VoteTopic       `json:"TokenVoteTopic"`
	TopicUID       string           `json:"TopicUID"`
	VoteType       *int             `json:"VoteType"`
}

func parseToken(data string) (Payload, error) {
	var raw rawToken
	if err := decodeFirst(data, &raw); err != nil {
		return nil, err
	}
	if raw.ContractUID == "" {
		return nil, quarantine("token: missing ContractUID")
	}

	p := Token{
		ContractUID: raw.ContractUID,
		Function:    raw.Function,
		FromAddress: raw.FromAddress,
		ToAddress:   raw.ToAddress,
		BanAddress:  raw.BanAddress,
		TopicUID:    raw.TopicUID,
	}
	if raw.Amount != nil {
		p.Amount = *raw.Amount
	}

	switch raw.Function {
	case FnTokenMint, FnTokenBurn:
		if raw.FromAddress == "" || raw.Amount == nil {
			return nil, quarantine("token %s: missing FromAddress or Amount", raw.Function)
		}
	case FnTokenTransfer:
		if raw.FromAddress == "" || raw.ToAddress == "" || raw.Amount == nil {
			return nil, quarantine("token %s: missing addresses or Amount", raw.Function)
		}
	case FnTokenOwnerChange:
		if raw.ToAddress == "" {
			return nil, quarantine("token %s: missing ToAddress", raw.Function)
		}
	case FnTokenPause:
		if raw.Pause == nil {
			return nil, quarantine("token %s: missing Pause", raw.Function)
		}
		p.Pause = *raw.Pause
	case FnTokenBanAddress:
		if raw.BanAddress == "" {
			return nil, quarantine("token %s: missing BanAddress", raw.Function)
		}
	case FnTokenTopicCreate:
		if raw.TokenVoteTopic == nil || raw.TokenVoteTopic.TopicUID == "" {
			return nil, quarantine("token %s: missing TokenVoteTopic", raw.Function)
		}
		p.Topic = *raw.TokenVoteTopic
	case FnTokenTopicCast:
		if raw.TopicUID == "" || raw.FromAddress == "" || raw.VoteType == nil {
			return nil, quarantine("token %s: missing vote fields", raw.Function)
		}
		p.VoteYes = *raw.VoteType == 1
	default:
		return nil, quarantine("token: unsupported function %q", raw.Function)
	}
	return p, nil
}

type rawVbtc struct {
	ContractUID string           `json:"ContractUID"`
	Function    Function         `json:"Function"`
	Amount      *decimal.Decimal `json:"Amount"`
}

func parseVbtc(data string) (Payload, error) {
	var raw rawVbtc
	if err := decodeFirst(data, &raw); err != nil {
		return nil, err
	}
	if raw.ContractUID == "" {
		return nil, quarantine("vbtc: missing ContractUID")
	}

	p := Vbtc{ContractUID: raw.ContractUID, Function: raw.Function}
	switch raw.Function {
	case FnTransferCoin:
		if raw.Amount == nil {
			return nil, quarantine("vbtc %s: missing Amount", raw.Function)
		}
		p.Amount = *raw.Amount
	case FnTransfer:
	default:
		return nil, quarantine("vbtc: unsupported function %q", raw.Function)
	}
	return p, nil
}
