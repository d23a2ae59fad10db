package abi

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

var RemixerABI abi.ABI

var remixerABI = `[{"type":"function","name":"createRemixerCoin","stateMutability":"nonpayable","inputs":[{"type":"address","name":"payoutRecipient"},{"type":"address[]","name":"creators"},{"type":"string","name":"uri"},{"type":"string","name":"name"},{"type":"string","name":"symbol"},{"type":"uint256","name":"revenueShare"},{"type":"bytes32","name":"salt"}],"outputs":[{"type":"address","name":"coin"}]},{"type":"function","name":"coinOf","constant":true,"stateMutability":"view","inputs":[{"type":"bytes32","name":"salt"}],"outputs":[{"type":"address"}]},{"type":"event","anonymous":false,"name":"RemixerCoinAdded","inputs":[{"type":"address","name":"coin","indexed":true},{"type":"address","name":"payoutRecipient","indexed":true},{"type":"string","name":"uri"},{"type":"uint256","name":"revenueShare"},{"type":"bytes32","name":"salt"}]}]`

func init() {
	_abi, err := abi.JSON(strings.NewReader(remixerABI))
	if err != nil {
		panic(err)
	}
	RemixerABI = _abi
}
