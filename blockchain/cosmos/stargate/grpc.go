package stargate

import (
	"crypto/tls"
	"regexp"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
)

var httpProtocols = regexp.MustCompile("https?://")

// CreateGrpcConnection dials a node's gRPC endpoint. TLS is used for https:// and :443 addresses.
func CreateGrpcConnection(grpcAddress string) (*grpc.ClientConn, error) {
	var transportCredentials credentials.TransportCredentials
	if strings.HasPrefix(grpcAddress, "https") || strings.HasSuffix(grpcAddress, ":443") {
		transportCredentials = credentials.NewTLS(&tls.Config{MinVersion: tls.VersionTLS12})
	} else {
		transportCredentials = insecure.NewCredentials()
	}

	grpcAddress = httpProtocols.ReplaceAllString(grpcAddress, "")

	return grpc.Dial(grpcAddress, grpc.WithTransportCredentials(transportCredentials))
}
