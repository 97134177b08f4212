// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package bitpeople

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// DefaultAddress is where the chain's genesis places the contract.
var DefaultAddress = common.HexToAddress("0x0000000000000000000000000000000000000010")

// Token identifies one of the contract's token kinds.
type Token uint8

const (
	TokenProofOfUniqueHuman Token = iota
	TokenRegister
	TokenOptIn
	TokenBorderVote
)

func (t Token) String() string {
	switch t {
	case TokenProofOfUniqueHuman:
		return "proof-of-unique-human"
	case TokenRegister:
		return "register"
	case TokenOptIn:
		return "opt-in"
	case TokenBorderVote:
		return "border vote"
	default:
		return "unknown"
	}
}

// BitPeopleNym is the tuple returned by nym(t, account).
type BitPeopleNym struct {
	Id       *big.Int
	Verified bool
}

// BitPeoplePair is the tuple returned by pair(t, id).
type BitPeoplePair struct {
	Verified [2]bool
	Disputed bool
}

// BitPeopleCourt is the tuple returned by court(t, account).
type BitPeopleCourt struct {
	Id       *big.Int
	Verified [2]bool
}

// BitpeopleABI is the subset of the contract interface used by this node.
const BitpeopleABI = `[
{"inputs":[],"name":"schedule","outputs":[{"internalType":"uint256","name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
{"inputs":[{"internalType":"uint256","name":"t","type":"uint256"}],"name":"toSeconds","outputs":[{"internalType":"uint256","name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
{"inputs":[{"internalType":"uint256","name":"t","type":"uint256"}],"name":"quarter","outputs":[{"internalType":"uint256","name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
{"inputs":[{"internalType":"uint256","name":"t","type":"uint256"}],"name":"hour","outputs":[{"internalType":"uint256","name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
{"inputs":[{"internalType":"uint256","name":"t","type":"uint256"}],"name":"pseudonymEvent","outputs":[{"internalType":"uint256","name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
{"inputs":[{"internalType":"uint256","name":"t","type":"uint256"}],"name":"seed","outputs":[{"internalType":"uint256","name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
{"inputs":[{"internalType":"uint256","name":"t","type":"uint256"}],"name":"registryLength","outputs":[{"internalType":"uint256","name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
{"inputs":[{"internalType":"uint256","name":"t","type":"uint256"}],"name":"shuffled","outputs":[{"internalType":"uint256","name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
{"inputs":[{"internalType":"uint256","name":"t","type":"uint256"}],"name":"courts","outputs":[{"internalType":"uint256","name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
{"inputs":[{"internalType":"uint256","name":"t","type":"uint256"}],"name":"population","outputs":[{"internalType":"uint256","name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
{"inputs":[{"internalType":"uint256","name":"t","type":"uint256"}],"name":"permits","outputs":[{"internalType":"uint256","name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
{"inputs":[{"internalType":"uint256","name":"t","type":"uint256"},{"internalType":"address","name":"account","type":"address"}],"name":"nym","outputs":[{"components":[{"internalType":"uint256","name":"id","type":"uint256"},{"internalType":"bool","name":"verified","type":"bool"}],"internalType":"struct BitPeople.Nym","name":"","type":"tuple"}],"stateMutability":"view","type":"function"},
{"inputs":[{"internalType":"uint256","name":"t","type":"uint256"},{"internalType":"address","name":"account","type":"address"}],"name":"shuffler","outputs":[{"internalType":"bool","name":"","type":"bool"}],"stateMutability":"view","type":"function"},
{"inputs":[{"internalType":"uint256","name":"t","type":"uint256"},{"internalType":"address","name":"account","type":"address"}],"name":"proofOfUniqueHuman","outputs":[{"internalType":"bool","name":"","type":"bool"}],"stateMutability":"view","type":"function"},
{"inputs":[{"internalType":"uint256","name":"t","type":"uint256"},{"internalType":"address","name":"account","type":"address"}],"name":"commit","outputs":[{"internalType":"bytes32","name":"","type":"bytes32"}],"stateMutability":"view","type":"function"},
{"inputs":[{"internalType":"uint256","name":"t","type":"uint256"},{"internalType":"uint256","name":"id","type":"uint256"}],"name":"pair","outputs":[{"components":[{"internalType":"bool[2]","name":"verified","type":"bool[2]"},{"internalType":"bool","name":"disputed","type":"bool"}],"internalType":"struct BitPeople.Pair","name":"","type":"tuple"}],"stateMutability":"view","type":"function"},
{"inputs":[{"internalType":"uint256","name":"t","type":"uint256"},{"internalType":"uint256","name":"id","type":"uint256"}],"name":"registry","outputs":[{"internalType":"address","name":"","type":"address"}],"stateMutability":"view","type":"function"},
{"inputs":[{"internalType":"uint256","name":"t","type":"uint256"},{"internalType":"address","name":"account","type":"address"}],"name":"court","outputs":[{"components":[{"internalType":"uint256","name":"id","type":"uint256"},{"internalType":"bool[2]","name":"verified","type":"bool[2]"}],"internalType":"struct BitPeople.Court","name":"","type":"tuple"}],"stateMutability":"view","type":"function"},
{"inputs":[{"internalType":"uint256","name":"t","type":"uint256"},{"internalType":"uint8","name":"token","type":"uint8"},{"internalType":"address","name":"account","type":"address"}],"name":"balanceOf","outputs":[{"internalType":"uint256","name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
{"inputs":[{"internalType":"bytes32","name":"_commit","type":"bytes32"}],"name":"register","outputs":[],"stateMutability":"nonpayable","type":"function"},
{"inputs":[],"name":"optIn","outputs":[],"stateMutability":"nonpayable","type":"function"},
{"inputs":[],"name":"shuffle","outputs":[{"internalType":"bool","name":"","type":"bool"}],"stateMutability":"nonpayable","type":"function"},
{"inputs":[],"name":"verify","outputs":[],"stateMutability":"nonpayable","type":"function"},
{"inputs":[{"internalType":"address","name":"_court","type":"address"}],"name":"judge","outputs":[],"stateMutability":"nonpayable","type":"function"},
{"inputs":[],"name":"nymVerified","outputs":[],"stateMutability":"nonpayable","type":"function"},
{"inputs":[{"internalType":"bytes32","name":"preimage","type":"bytes32"}],"name":"revealHash","outputs":[],"stateMutability":"nonpayable","type":"function"},
{"inputs":[],"name":"claimProofOfUniqueHuman","outputs":[],"stateMutability":"nonpayable","type":"function"},
{"inputs":[{"internalType":"address","name":"to","type":"address"},{"internalType":"uint256","name":"value","type":"uint256"},{"internalType":"uint8","name":"token","type":"uint8"}],"name":"transfer","outputs":[],"stateMutability":"nonpayable","type":"function"}
]`

// Bitpeople is a Go binding around the BitPeople contract.
type Bitpeople struct {
	BitpeopleCaller     // Read-only binding to the contract
	BitpeopleTransactor // Write-only binding to the contract
}

// BitpeopleCaller is a read-only binding around the contract.
type BitpeopleCaller struct {
	contract *bind.BoundContract
}

// BitpeopleTransactor is a write-only binding around the contract.
type BitpeopleTransactor struct {
	contract *bind.BoundContract
}

// NewBitpeople creates a new instance of Bitpeople, bound to a specific deployed contract.
func NewBitpeople(address common.Address, backend bind.ContractBackend) (*Bitpeople, error) {
	contract, err := bindBitpeople(address, backend, backend)
	if err != nil {
		return nil, err
	}
	return &Bitpeople{
		BitpeopleCaller:     BitpeopleCaller{contract: contract},
		BitpeopleTransactor: BitpeopleTransactor{contract: contract},
	}, nil
}

// NewBitpeopleCaller creates a new read-only instance of Bitpeople.
func NewBitpeopleCaller(address common.Address, caller bind.ContractCaller) (*BitpeopleCaller, error) {
	contract, err := bindBitpeople(address, caller, nil)
	if err != nil {
		return nil, err
	}
	return &BitpeopleCaller{contract: contract}, nil
}

// NewBitpeopleTransactor creates a new write-only instance of Bitpeople.
func NewBitpeopleTransactor(address common.Address, transactor bind.ContractTransactor) (*BitpeopleTransactor, error) {
	contract, err := bindBitpeople(address, nil, transactor)
	if err != nil {
		return nil, err
	}
	return &BitpeopleTransactor{contract: contract}, nil
}

func bindBitpeople(address common.Address, caller bind.ContractCaller, transactor bind.ContractTransactor) (*bind.BoundContract, error) {
	parsed, err := abi.JSON(strings.NewReader(BitpeopleABI))
	if err != nil {
		return nil, err
	}
	return bind.NewBoundContract(address, parsed, caller, transactor, nil), nil
}

func (_Bitpeople *BitpeopleCaller) callUint(opts *bind.CallOpts, method string, args ...interface{}) (*big.Int, error) {
	var out []interface{}
	err := _Bitpeople.contract.Call(opts, &out, method, args...)
	if err != nil {
		return *new(*big.Int), err
	}
	out0 := *abi.ConvertType(out[0], new(*big.Int)).(**big.Int)
	return out0, err
}

func (_Bitpeople *BitpeopleCaller) callBool(opts *bind.CallOpts, method string, args ...interface{}) (bool, error) {
	var out []interface{}
	err := _Bitpeople.contract.Call(opts, &out, method, args...)
	if err != nil {
		return *new(bool), err
	}
	out0 := *abi.ConvertType(out[0], new(bool)).(*bool)
	return out0, err
}

// Schedule is a free data retrieval call binding the contract method.
//
// Solidity: function schedule() view returns(uint256)
func (_Bitpeople *BitpeopleCaller) Schedule(opts *bind.CallOpts) (*big.Int, error) {
	return _Bitpeople.callUint(opts, "schedule")
}

// ToSeconds binds toSeconds(uint256 t) view returns(uint256).
func (_Bitpeople *BitpeopleCaller) ToSeconds(opts *bind.CallOpts, t *big.Int) (*big.Int, error) {
	return _Bitpeople.callUint(opts, "toSeconds", t)
}

// Quarter binds quarter(uint256 t) view returns(uint256).
func (_Bitpeople *BitpeopleCaller) Quarter(opts *bind.CallOpts, t *big.Int) (*big.Int, error) {
	return _Bitpeople.callUint(opts, "quarter", t)
}

// Hour binds hour(uint256 t) view returns(uint256).
func (_Bitpeople *BitpeopleCaller) Hour(opts *bind.CallOpts, t *big.Int) (*big.Int, error) {
	return _Bitpeople.callUint(opts, "hour", t)
}

// PseudonymEvent binds pseudonymEvent(uint256 t) view returns(uint256).
func (_Bitpeople *BitpeopleCaller) PseudonymEvent(opts *bind.CallOpts, t *big.Int) (*big.Int, error) {
	return _Bitpeople.callUint(opts, "pseudonymEvent", t)
}

// Seed binds seed(uint256 t) view returns(uint256).
func (_Bitpeople *BitpeopleCaller) Seed(opts *bind.CallOpts, t *big.Int) (*big.Int, error) {
	return _Bitpeople.callUint(opts, "seed", t)
}

// RegistryLength binds registryLength(uint256 t) view returns(uint256).
func (_Bitpeople *BitpeopleCaller) RegistryLength(opts *bind.CallOpts, t *big.Int) (*big.Int, error) {
	return _Bitpeople.callUint(opts, "registryLength", t)
}

// Shuffled binds shuffled(uint256 t) view returns(uint256).
func (_Bitpeople *BitpeopleCaller) Shuffled(opts *bind.CallOpts, t *big.Int) (*big.Int, error) {
	return _Bitpeople.callUint(opts, "shuffled", t)
}

// Courts binds courts(uint256 t) view returns(uint256).
func (_Bitpeople *BitpeopleCaller) Courts(opts *bind.CallOpts, t *big.Int) (*big.Int, error) {
	return _Bitpeople.callUint(opts, "courts", t)
}

// Population binds population(uint256 t) view returns(uint256).
func (_Bitpeople *BitpeopleCaller) Population(opts *bind.CallOpts, t *big.Int) (*big.Int, error) {
	return _Bitpeople.callUint(opts, "population", t)
}

// Permits binds permits(uint256 t) view returns(uint256).
func (_Bitpeople *BitpeopleCaller) Permits(opts *bind.CallOpts, t *big.Int) (*big.Int, error) {
	return _Bitpeople.callUint(opts, "permits", t)
}

// Nym is a free data retrieval call binding the contract method.
//
// Solidity: function nym(uint256 t, address account) view returns((uint256,bool))
func (_Bitpeople *BitpeopleCaller) Nym(opts *bind.CallOpts, t *big.Int, account common.Address) (BitPeopleNym, error) {
	var out []interface{}
	err := _Bitpeople.contract.Call(opts, &out, "nym", t, account)
	if err != nil {
		return *new(BitPeopleNym), err
	}
	out0 := *abi.ConvertType(out[0], new(BitPeopleNym)).(*BitPeopleNym)
	return out0, err
}

// Shuffler binds shuffler(uint256 t, address account) view returns(bool).
func (_Bitpeople *BitpeopleCaller) Shuffler(opts *bind.CallOpts, t *big.Int, account common.Address) (bool, error) {
	return _Bitpeople.callBool(opts, "shuffler", t, account)
}

// ProofOfUniqueHuman binds proofOfUniqueHuman(uint256 t, address account) view returns(bool).
func (_Bitpeople *BitpeopleCaller) ProofOfUniqueHuman(opts *bind.CallOpts, t *big.Int, account common.Address) (bool, error) {
	return _Bitpeople.callBool(opts, "proofOfUniqueHuman", t, account)
}

// Commit binds commit(uint256 t, address account) view returns(bytes32).
func (_Bitpeople *BitpeopleCaller) Commit(opts *bind.CallOpts, t *big.Int, account common.Address) ([32]byte, error) {
	var out []interface{}
	err := _Bitpeople.contract.Call(opts, &out, "commit", t, account)
	if err != nil {
		return *new([32]byte), err
	}
	out0 := *abi.ConvertType(out[0], new([32]byte)).(*[32]byte)
	return out0, err
}

// Pair is a free data retrieval call binding the contract method.
//
// Solidity: function pair(uint256 t, uint256 id) view returns((bool[2],bool))
func (_Bitpeople *BitpeopleCaller) Pair(opts *bind.CallOpts, t *big.Int, id *big.Int) (BitPeoplePair, error) {
	var out []interface{}
	err := _Bitpeople.contract.Call(opts, &out, "pair", t, id)
	if err != nil {
		return *new(BitPeoplePair), err
	}
	out0 := *abi.ConvertType(out[0], new(BitPeoplePair)).(*BitPeoplePair)
	return out0, err
}

// Registry binds registry(uint256 t, uint256 id) view returns(address).
func (_Bitpeople *BitpeopleCaller) Registry(opts *bind.CallOpts, t *big.Int, id *big.Int) (common.Address, error) {
	var out []interface{}
	err := _Bitpeople.contract.Call(opts, &out, "registry", t, id)
	if err != nil {
		return *new(common.Address), err
	}
	out0 := *abi.ConvertType(out[0], new(common.Address)).(*common.Address)
	return out0, err
}

// Court is a free data retrieval call binding the contract method.
//
// Solidity: function court(uint256 t, address account) view returns((uint256,bool[2]))
func (_Bitpeople *BitpeopleCaller) Court(opts *bind.CallOpts, t *big.Int, account common.Address) (BitPeopleCourt, error) {
	var out []interface{}
	err := _Bitpeople.contract.Call(opts, &out, "court", t, account)
	if err != nil {
		return *new(BitPeopleCourt), err
	}
	out0 := *abi.ConvertType(out[0], new(BitPeopleCourt)).(*BitPeopleCourt)
	return out0, err
}

// BalanceOf binds balanceOf(uint256 t, uint8 token, address account) view returns(uint256).
func (_Bitpeople *BitpeopleCaller) BalanceOf(opts *bind.CallOpts, t *big.Int, token uint8, account common.Address) (*big.Int, error) {
	return _Bitpeople.callUint(opts, "balanceOf", t, token, account)
}

// Register is a paid mutator transaction binding the contract method.
//
// Solidity: function register(bytes32 _commit) returns()
func (_Bitpeople *BitpeopleTransactor) Register(opts *bind.TransactOpts, _commit [32]byte) (*types.Transaction, error) {
	return _Bitpeople.contract.Transact(opts, "register", _commit)
}

// OptIn binds optIn() returns().
func (_Bitpeople *BitpeopleTransactor) OptIn(opts *bind.TransactOpts) (*types.Transaction, error) {
	return _Bitpeople.contract.Transact(opts, "optIn")
}

// Shuffle binds shuffle() returns(bool).
func (_Bitpeople *BitpeopleTransactor) Shuffle(opts *bind.TransactOpts) (*types.Transaction, error) {
	return _Bitpeople.contract.Transact(opts, "shuffle")
}

// Verify binds verify() returns().
func (_Bitpeople *BitpeopleTransactor) Verify(opts *bind.TransactOpts) (*types.Transaction, error) {
	return _Bitpeople.contract.Transact(opts, "verify")
}

// Judge binds judge(address _court) returns().
func (_Bitpeople *BitpeopleTransactor) Judge(opts *bind.TransactOpts, _court common.Address) (*types.Transaction, error) {
	return _Bitpeople.contract.Transact(opts, "judge", _court)
}

// NymVerified binds nymVerified() returns().
func (_Bitpeople *BitpeopleTransactor) NymVerified(opts *bind.TransactOpts) (*types.Transaction, error) {
	return _Bitpeople.contract.Transact(opts, "nymVerified")
}

// RevealHash binds revealHash(bytes32 preimage) returns().
func (_Bitpeople *BitpeopleTransactor) RevealHash(opts *bind.TransactOpts, preimage [32]byte) (*types.Transaction, error) {
	return _Bitpeople.contract.Transact(opts, "revealHash", preimage)
}

// ClaimProofOfUniqueHuman binds claimProofOfUniqueHuman() returns().
func (_Bitpeople *BitpeopleTransactor) ClaimProofOfUniqueHuman(opts *bind.TransactOpts) (*types.Transaction, error) {
	return _Bitpeople.contract.Transact(opts, "claimProofOfUniqueHuman")
}

// Transfer binds transfer(address to, uint256 value, uint8 token) returns().
func (_Bitpeople *BitpeopleTransactor) Transfer(opts *bind.TransactOpts, to common.Address, value *big.Int, token uint8) (*types.Transaction, error) {
	return _Bitpeople.contract.Transact(opts, "transfer", to, value, token)
}
