package resolver

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"

	enscommon "github.com/tranvictor/enslens/common"
)

const TIMEOUT time.Duration = 4 * time.Second

// RegistryAddress is the ENS registry contract on Ethereum mainnet. Name
// resolution always goes through mainnet no matter which chain the profile
// data is fetched from.
const RegistryAddress = "0x00000000000C2E074eC69A0dFb2997BA6C7d2e1e"

// DefaultTextKeys is the record set probed for a profile view.
var DefaultTextKeys = []string{
	"avatar", "display", "description", "email", "url",
	"twitter", "github", "discord", "telegram", "reddit",
	"eth", "btc", "ltc", "doge", "contenthash",
}

const registryABI = `[{"constant":true,"inputs":[{"name":"node","type":"bytes32"}],"name":"resolver","outputs":[{"name":"","type":"address"}],"stateMutability":"view","type":"function"}]`

const resolverABI = `[
	{"constant":true,"inputs":[{"name":"node","type":"bytes32"}],"name":"addr","outputs":[{"name":"","type":"address"}],"stateMutability":"view","type":"function"},
	{"constant":true,"inputs":[{"name":"node","type":"bytes32"},{"name":"key","type":"string"}],"name":"text","outputs":[{"name":"","type":"string"}],"stateMutability":"view","type":"function"}
]`

var nameFormat = regexp.MustCompile(`^([a-z0-9-]+\.)+eth$`)

// Normalize lowercases and trims a raw name. Resolution results for the
// normalized form are what get attached to profiles.
func Normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// nodeClient wraps one JSON-RPC endpoint with lazy connection, mirroring how
// the rest of the codebase talks to nodes.
type nodeClient struct {
	name string
	url  string

	mu        sync.Mutex
	client    *rpc.Client
	ethClient *ethclient.Client
}

func (nc *nodeClient) EthClient() (*ethclient.Client, error) {
	nc.mu.Lock()
	defer nc.mu.Unlock()
	if nc.ethClient != nil {
		return nc.ethClient, nil
	}
	client, err := rpc.Dial(nc.url)
	if err != nil {
		return nil, fmt.Errorf("couldn't connect to %s: %w", nc.name, err)
	}
	nc.client = client
	nc.ethClient = ethclient.NewClient(client)
	return nc.ethClient, nil
}

func (nc *nodeClient) callContract(to ethcommon.Address, data []byte) ([]byte, error) {
	ethcli, err := nc.EthClient()
	if err != nil {
		return nil, err
	}
	timeout, cancel := context.WithTimeout(context.Background(), TIMEOUT)
	defer cancel()
	return ethcli.CallContract(timeout, ethereum.CallMsg{
		To:   &to,
		Data: data,
	}, nil)
}

// Resolver resolves names and text records against the ENS registry through
// one or more JSON-RPC nodes. All nodes are queried in parallel and the first
// successful response wins.
type Resolver struct {
	nodes       []*nodeClient
	registry    abi.ABI
	resolverAbi abi.ABI
}

func NewResolver(nodes map[string]string) (*Resolver, error) {
	if len(nodes) == 0 {
		return nil, fmt.Errorf("resolver needs at least one node")
	}
	regAbi, err := abi.JSON(strings.NewReader(registryABI))
	if err != nil {
		return nil, err
	}
	resAbi, err := abi.JSON(strings.NewReader(resolverABI))
	if err != nil {
		return nil, err
	}
	r := &Resolver{
		registry:    regAbi,
		resolverAbi: resAbi,
	}
	for name, url := range nodes {
		r.nodes = append(r.nodes, &nodeClient{name: name, url: url})
	}
	return r, nil
}

type callResponse struct {
	Data  []byte
	Error error
}

// callContract queries all nodes in parallel and returns the first successful
// response, or all errors joined when every node fails.
func (r *Resolver) callContract(to ethcommon.Address, data []byte) ([]byte, error) {
	resCh := make(chan callResponse, len(r.nodes))
	for i := range r.nodes {
		n := r.nodes[i]
		go func() {
			data, err := n.callContract(to, data)
			if err != nil {
				err = fmt.Errorf("%s: %w", n.name, err)
			}
			resCh <- callResponse{Data: data, Error: err}
		}()
	}
	errs := []error{}
	for i := 0; i < len(r.nodes); i++ {
		result := <-resCh
		if result.Error == nil {
			return result.Data, nil
		}
		errs = append(errs, result.Error)
	}
	return nil, fmt.Errorf("couldn't read from any nodes: %w", errors.Join(errs...))
}

func (r *Resolver) readAddress(to ethcommon.Address, a abi.ABI, method string, args ...interface{}) (ethcommon.Address, error) {
	data, err := a.Pack(method, args...)
	if err != nil {
		return ethcommon.Address{}, err
	}
	response, err := r.callContract(to, data)
	if err != nil {
		return ethcommon.Address{}, err
	}
	var result ethcommon.Address
	if err := a.UnpackIntoInterface(&result, method, response); err != nil {
		return ethcommon.Address{}, err
	}
	return result, nil
}

// resolverFor returns the resolver contract registered for name. A zero
// result means the name has no resolver, hence can't resolve to anything.
func (r *Resolver) resolverFor(name string) (ethcommon.Address, error) {
	node := NameHash(name)
	return r.readAddress(ethcommon.HexToAddress(RegistryAddress), r.registry, "resolver", node)
}

// Resolve resolves a name to its address. It returns a
// *common.NameNotFoundError when the name is malformed, has no resolver, or
// resolves to the zero address — all expected outcomes, not transport
// failures.
func (r *Resolver) Resolve(name string) (string, error) {
	name = Normalize(name)
	if name == "" || !nameFormat.MatchString(name) {
		return "", &enscommon.NameNotFoundError{Name: name}
	}
	resolverAddr, err := r.resolverFor(name)
	if err != nil {
		return "", fmt.Errorf("ens registry lookup for %s failed: %w", name, err)
	}
	if resolverAddr == (ethcommon.Address{}) {
		return "", &enscommon.NameNotFoundError{Name: name}
	}
	addr, err := r.readAddress(resolverAddr, r.resolverAbi, "addr", NameHash(name))
	if err != nil {
		return "", fmt.Errorf("ens addr lookup for %s failed: %w", name, err)
	}
	if addr == (ethcommon.Address{}) {
		return "", &enscommon.NameNotFoundError{Name: name}
	}
	return addr.Hex(), nil
}

// textAt reads one text record from an already-known resolver contract.
func (r *Resolver) textAt(resolverAddr ethcommon.Address, name string, key string) (string, error) {
	data, err := r.resolverAbi.Pack("text", NameHash(name), key)
	if err != nil {
		return "", err
	}
	response, err := r.callContract(resolverAddr, data)
	if err != nil {
		return "", err
	}
	var result string
	if err := r.resolverAbi.UnpackIntoInterface(&result, "text", response); err != nil {
		return "", err
	}
	return result, nil
}

// Text returns one text record for name, or "" when the record is unset.
func (r *Resolver) Text(name string, key string) (string, error) {
	name = Normalize(name)
	resolverAddr, err := r.resolverFor(name)
	if err != nil {
		return "", err
	}
	if resolverAddr == (ethcommon.Address{}) {
		return "", nil
	}
	return r.textAt(resolverAddr, name, key)
}

// TextRecords fetches the given record keys independently. The name's
// resolver contract is looked up once and reused for every key. Keys with no
// value are omitted; a key whose fetch fails is skipped as well so one bad
// record never poisons the rest. When the name's resolver itself is
// unreachable the result is simply an empty map.
func (r *Resolver) TextRecords(name string, keys []string) map[string]string {
	name = Normalize(name)
	records := map[string]string{}
	resolverAddr, err := r.resolverFor(name)
	if err != nil {
		enscommon.DebugPrintf("text records for %s: %s\n", name, err)
		return records
	}
	if resolverAddr == (ethcommon.Address{}) {
		return records
	}
	for _, key := range keys {
		value, err := r.textAt(resolverAddr, name, key)
		if err != nil {
			enscommon.DebugPrintf("text record %s for %s: %s\n", key, name, err)
			continue
		}
		if value != "" {
			records[key] = value
		}
	}
	return records
}
