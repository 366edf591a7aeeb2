package contracts

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

var (
	faucetABI abi.ABI
	erc20ABI  abi.ABI
)

const faucetABIJSON = `[
	{"inputs":[{"name":"user","type":"address"}],"name":"canClaim","outputs":[{"name":"","type":"bool"}],"stateMutability":"view","type":"function"},
	{"inputs":[{"name":"user","type":"address"}],"name":"getRemainingCooldown","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
	{"inputs":[],"name":"getBalance","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
	{"inputs":[],"name":"claimAmount","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
	{"inputs":[],"name":"cooldownTime","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
	{"inputs":[{"name":"beneficiary","type":"address"}],"name":"claimFor","outputs":[],"stateMutability":"nonpayable","type":"function"}
]`

const erc20ABIJSON = `[
	{"inputs":[],"name":"symbol","outputs":[{"name":"","type":"string"}],"stateMutability":"view","type":"function"},
	{"inputs":[],"name":"decimals","outputs":[{"name":"","type":"uint8"}],"stateMutability":"view","type":"function"}
]`

func init() {
	var err error
	faucetABI, err = abi.JSON(strings.NewReader(faucetABIJSON))
	if err != nil {
		panic("contracts: invalid faucet ABI: " + err.Error())
	}
	erc20ABI, err = abi.JSON(strings.NewReader(erc20ABIJSON))
	if err != nil {
		panic("contracts: invalid erc20 ABI: " + err.Error())
	}
}
