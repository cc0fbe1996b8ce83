package explorers_test

import (
	"fmt"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tranvictor/enslens/util/explorers"
)

func newTestExplorer(handler http.HandlerFunc) (*explorers.EtherscanLikeExplorer, *httptest.Server) {
	server := httptest.NewServer(handler)
	return explorers.NewEtherscanLikeExplorer(1, server.URL, "testkey"), server
}

func TestNativeBalance(t *testing.T) {
	ee, server := newTestExplorer(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("module") != "account" || q.Get("action") != "balance" {
			t.Errorf("unexpected query: %s", r.URL.RawQuery)
		}
		if q.Get("chainid") != "1" {
			t.Errorf("chainid = %s, expected 1", q.Get("chainid"))
		}
		fmt.Fprintf(w, `{"status":"1","message":"OK","result":"2500000000000000000"}`)
	})
	defer server.Close()

	balance, err := ee.NativeBalance("0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045")
	if err != nil {
		t.Fatalf("NativeBalance returned error: %s", err)
	}
	expected, _ := big.NewInt(0).SetString("2500000000000000000", 10)
	if balance.Cmp(expected) != 0 {
		t.Errorf("balance = %s, expected %s", balance, expected)
	}
}

func TestNativeBalanceEmptyResultIsZero(t *testing.T) {
	// a fresh address with no history reports 0, not an error
	ee, server := newTestExplorer(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"status":"1","message":"OK","result":""}`)
	})
	defer server.Close()

	balance, err := ee.NativeBalance("0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045")
	if err != nil {
		t.Fatalf("NativeBalance returned error: %s", err)
	}
	if balance.Sign() != 0 {
		t.Errorf("balance = %s, expected 0", balance)
	}
}

func TestNativeBalanceTransportFailure(t *testing.T) {
	ee, server := newTestExplorer(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	defer server.Close()

	if _, err := ee.NativeBalance("0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045"); err == nil {
		t.Fatalf("expected error on non-2xx response")
	}
}

func TestInternalTransactions(t *testing.T) {
	ee, server := newTestExplorer(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("action") != "txlistinternal" {
			t.Errorf("unexpected action %s", q.Get("action"))
		}
		if q.Get("offset") != "10" || q.Get("sort") != "desc" {
			t.Errorf("unexpected paging params: %s", r.URL.RawQuery)
		}
		fmt.Fprintf(w, `{"status":"1","message":"OK","result":[
			{"hash":"0xaaa","from":"0x1","to":"0x2","value":"1000000000000000000","timeStamp":"1700000300"},
			{"hash":"","from":"0x1","to":"0x2","value":"5","timeStamp":"1700000200"},
			{"hash":"0xbbb","from":"0x2","to":"0x1","value":"2000000000000000000","timeStamp":"1700000100"}
		]}`)
	})
	defer server.Close()

	txs, err := ee.InternalTransactions("0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045", 10)
	if err != nil {
		t.Fatalf("InternalTransactions returned error: %s", err)
	}
	// the record without a hash is dropped, not a failure
	if len(txs) != 2 {
		t.Fatalf("got %d txs, expected 2", len(txs))
	}
	if txs[0].Hash != "0xaaa" || txs[1].Hash != "0xbbb" {
		t.Errorf("txs not sorted newest first: %s then %s", txs[0].Hash, txs[1].Hash)
	}
	if txs[0].Timestamp != 1700000300 {
		t.Errorf("timestamp = %d, expected 1700000300", txs[0].Timestamp)
	}
}

func TestInternalTransactionsCappedAtLimit(t *testing.T) {
	ee, server := newTestExplorer(func(w http.ResponseWriter, r *http.Request) {
		result := `[`
		for i := 0; i < 15; i++ {
			if i > 0 {
				result += ","
			}
			result += fmt.Sprintf(
				`{"hash":"0x%d","from":"0x1","to":"0x2","value":"1","timeStamp":"%d"}`,
				i, 1700000000+i,
			)
		}
		result += `]`
		fmt.Fprintf(w, `{"status":"1","message":"OK","result":%s}`, result)
	})
	defer server.Close()

	txs, err := ee.InternalTransactions("0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045", 10)
	if err != nil {
		t.Fatalf("InternalTransactions returned error: %s", err)
	}
	if len(txs) != 10 {
		t.Errorf("got %d txs, expected the limit of 10", len(txs))
	}
}

func TestInternalTransactionsNoneFound(t *testing.T) {
	ee, server := newTestExplorer(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"status":"0","message":"No transactions found","result":"No transactions found"}`)
	})
	defer server.Close()

	txs, err := ee.InternalTransactions("0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045", 10)
	if err != nil {
		t.Fatalf("empty history must not be an error, got: %s", err)
	}
	if len(txs) != 0 {
		t.Errorf("got %d txs, expected none", len(txs))
	}
}

func TestAddressNametag(t *testing.T) {
	ee, server := newTestExplorer(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"status":"1","message":"OK","result":{"nameTag":"Vitalik Buterin"}}`)
	})
	defer server.Close()

	tag, err := ee.AddressNametag("0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045")
	if err != nil {
		t.Fatalf("AddressNametag returned error: %s", err)
	}
	if tag != "Vitalik Buterin" {
		t.Errorf("tag = %q", tag)
	}
}
