package legacy_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/openweb3-io/walletbridge/blockchain/cosmos/legacy"
	cosmostypes "github.com/openweb3-io/walletbridge/blockchain/cosmos/types"
	"github.com/openweb3-io/walletbridge/testutil"
	xc "github.com/openweb3-io/walletbridge/types"
	"github.com/openweb3-io/walletbridge/wallet/mock"
	"github.com/stretchr/testify/suite"
)

const sender = "omniflix1qyqszqgpqyqszqgpqyqszqgpqyqszqgpjnp7du"

const accountJSON = `{
  "account": {
    "@type": "/cosmos.auth.v1beta1.BaseAccount",
    "address": "omniflix1qyqszqgpqyqszqgpqyqszqgpqyqszqgpjnp7du",
    "account_number": "12",
    "sequence": "4"
  }
}`

type LegacyClientTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	profile  *xc.ChainProfile
	encoding cosmostypes.EncodingConfig
	signer   *mock.MockOfflineSigner
}

func (s *LegacyClientTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.profile = &xc.ChainProfile{ChainID: "omniflixhub-1", Bech32Prefix: "omniflix"}
	s.encoding = cosmostypes.MustMakeEncodingConfig("omniflix")
	s.signer = mock.NewMockOfflineSigner(s.ctrl)
}

func (s *LegacyClientTestSuite) client(url string) *legacy.Client {
	return legacy.NewClient(s.profile, url+"/", sender, s.signer, s.encoding.Codec)
}

func (s *LegacyClientTestSuite) tx() xc.StdTx {
	doc := xc.MakeSignDoc(
		[]xc.AminoMsg{{Type: "cosmos-sdk/MsgSend", Value: json.RawMessage(`{"amount":[]}`)}},
		xc.StdFee{Amount: []xc.Coin{{Denom: "uflix", Amount: "100"}}, Gas: "200000"},
		"omniflixhub-1", "test", 12, 4,
	)
	return xc.NewStdTx(doc, xc.StdSignature{Signature: []byte("sig1")})
}

func (s *LegacyClientTestSuite) TestBroadcastTx() {
	require := s.Require()
	server := testutil.NewMockHTTPServer(s.T(), testutil.MockResponse{
		Body: `{"height":"0","txhash":"D4E5","gas_wanted":"200000","gas_used":"0"}`,
	})

	res, err := s.client(server.URL).BroadcastTx(context.Background(), s.tx())
	require.NoError(err)
	require.Equal("D4E5", res.TxHash)
	require.EqualValues(0, res.Code)
	require.EqualValues(200000, res.GasWanted)

	received := server.Received()
	require.Len(received, 1)
	require.Equal(http.MethodPost, received[0].Method)
	require.Equal("/txs", received[0].Path)

	var body struct {
		Tx   xc.StdTx `json:"tx"`
		Mode string   `json:"mode"`
	}
	require.NoError(json.Unmarshal(received[0].Body, &body))
	require.Equal("sync", body.Mode)
	require.Equal("test", body.Tx.Memo)
	require.Equal([]byte("sig1"), body.Tx.Signatures[0].Signature)
}

func (s *LegacyClientTestSuite) TestBroadcastRejected() {
	require := s.Require()
	server := testutil.NewMockHTTPServer(s.T(), testutil.MockResponse{
		Body: `{"height":"0","txhash":"D4E5","code":4,"codespace":"sdk","raw_log":"signature verification failed"}`,
	})

	res, err := s.client(server.URL).BroadcastTx(context.Background(), s.tx())
	require.NoError(err)
	require.EqualValues(4, res.Code)
	require.Equal("signature verification failed", res.RawLog)
	require.ErrorIs(res.Err(), xc.ErrBroadcastRejected)
}

func (s *LegacyClientTestSuite) TestErrorBodies() {
	require := s.Require()
	server := testutil.NewMockHTTPServer(s.T(),
		testutil.MockResponse{Status: http.StatusBadRequest, Body: `{"error":"tx parse error"}`},
		testutil.MockResponse{Status: http.StatusNotFound, Body: `{"code":5,"message":"account not found"}`},
		testutil.MockResponse{Status: http.StatusBadGateway, Body: `<html>bad gateway</html>`},
	)
	c := s.client(server.URL)

	_, err := c.BroadcastTx(context.Background(), s.tx())
	require.EqualError(err, "tx parse error")

	_, err = c.GetAccount(context.Background())
	require.EqualError(err, "account not found")

	_, err = c.BroadcastTx(context.Background(), s.tx())
	require.ErrorContains(err, "502")
}

func (s *LegacyClientTestSuite) TestGetAccount() {
	require := s.Require()
	server := testutil.NewMockHTTPServer(s.T(), testutil.MockResponse{Body: accountJSON})

	info, err := s.client(server.URL).GetAccount(context.Background())
	require.NoError(err)
	require.Equal(xc.AccountSequenceInfo{AccountNumber: 12, Sequence: 4}, info)
	require.Equal("/cosmos/auth/v1beta1/accounts/"+sender, server.Received()[0].Path)
}

func (s *LegacyClientTestSuite) TestSignAndBroadcast() {
	require := s.Require()
	server := testutil.NewMockHTTPServer(s.T(),
		testutil.MockResponse{Body: accountJSON},
		testutil.MockResponse{Body: `{"height":"0","txhash":"AAAA"}`},
	)

	msgs := []xc.AminoMsg{{Type: "cosmos-sdk/MsgSend", Value: json.RawMessage(`{}`)}}
	fee := xc.StdFee{Amount: []xc.Coin{{Denom: "uflix", Amount: "100"}}, Gas: "200000"}
	s.signer.EXPECT().SignAmino(gomock.Any(), sender, xc.MakeSignDoc(msgs, fee, "omniflixhub-1", "hello", 12, 4)).
		DoAndReturn(func(_ context.Context, _ string, doc xc.StdSignDoc) (*xc.AminoSignResponse, error) {
			doc.Memo = "hello from wallet"
			return &xc.AminoSignResponse{Signed: doc, Signature: xc.StdSignature{Signature: []byte("sig")}}, nil
		})

	res, err := s.client(server.URL).SignAndBroadcast(context.Background(), msgs, fee, "hello")
	require.NoError(err)
	require.Equal("AAAA", res.TxHash)

	var body struct {
		Tx xc.StdTx `json:"tx"`
	}
	require.NoError(json.Unmarshal(server.Received()[1].Body, &body))
	require.Equal("hello from wallet", body.Tx.Memo)
}

func (s *LegacyClientTestSuite) TestSignAndBroadcastSignerRejects() {
	require := s.Require()
	server := testutil.NewMockHTTPServer(s.T(), testutil.MockResponse{Body: accountJSON})
	s.signer.EXPECT().SignAmino(gomock.Any(), sender, gomock.Any()).Return(nil, errors.New("Request rejected"))

	_, err := s.client(server.URL).SignAndBroadcast(context.Background(), nil, xc.StdFee{Gas: "1"}, "")
	require.EqualError(err, "Request rejected")
	require.Len(server.Received(), 1)
}

func (s *LegacyClientTestSuite) TestFactory() {
	require := s.Require()
	factory, err := legacy.NewFactory(s.profile, legacy.WithBroadcastMode(legacy.BroadcastModeBlock))
	require.NoError(err)

	server := testutil.NewMockHTTPServer(s.T(), testutil.MockResponse{Body: `{"txhash":"BBBB","height":"17"}`})
	res, err := factory(server.URL, sender, s.signer).BroadcastTx(context.Background(), s.tx())
	require.NoError(err)
	require.EqualValues(17, res.Height)
	require.Contains(string(server.Received()[0].Body), `"mode":"block"`)
}

func TestLegacyClient(t *testing.T) {
	suite.Run(t, new(LegacyClientTestSuite))
}
