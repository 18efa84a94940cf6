// Command txcodecdemo is a thin operator-facing harness around the codec
// and signing packages, in the teacher's own flag-subcommand CLI style
// (cli/cli.go). It is not part of the library's public contract — it
// exists to exercise the pipeline end to end from the command line.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/ledgerkit/txcodec/pkg/assetchain"
	"github.com/ledgerkit/txcodec/pkg/hashing"
	"github.com/ledgerkit/txcodec/pkg/ids"
	"github.com/ledgerkit/txcodec/pkg/signer"
	"github.com/ledgerkit/txcodec/pkg/signing"
	"github.com/ledgerkit/txcodec/pkg/txs"
)

type CommandLine struct{}

func (cli *CommandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println(" demo -network N -amount AMT - build, sign, and print a single-input base tx")
	fmt.Println(" decode -hex HEX - decode a signed tx from its hex wire form")
}

func (cli *CommandLine) validateArgs() {
	if len(os.Args) < 2 {
		cli.printUsage()
		runtime.Goexit()
	}
}

// demo builds a minimal BaseTx spending one SECP256K1TransferOutput to a
// freshly generated key, signs it, and prints the signed bytes and the
// base-58-check string form.
func (cli *CommandLine) demo(networkID uint32, amount uint64) {
	priv, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		log.Panic(err)
	}
	signerKey := signer.NewSECP256K1Signer(priv)
	addr := signerKey.Address()

	var blockchainID ids.BlockchainID
	var assetID ids.AssetID
	var txID [32]byte
	copy(blockchainID[:], bytesOf(0x10, ids.BlockchainIDLen))
	copy(assetID[:], bytesOf(0x20, ids.AssetIDLen))
	copy(txID[:], bytesOf(0x30, 32))

	out, err := txs.NewSECP256K1TransferOutput(amount, 0, 1, []ids.ShortID{addr})
	if err != nil {
		log.Panic(err)
	}

	in := txs.NewSECP256K1TransferInput(amount, []txs.SigIdx{{AddressIndex: 0, Source: addr}})

	unsigned := &assetchain.BaseTx{
		Header: assetchain.Header{
			NetworkID:    ids.NetworkID(networkID),
			BlockchainID: blockchainID,
			Outs: []txs.TransferableOutput{
				{AssetID: assetID, Out: out},
			},
			Ins: []txs.TransferableInput{
				{UTXOID: ids.UTXOID{TxID: txID, OutputIndex: 0}, AssetID: assetID, In: in},
			},
		},
	}

	keychain := signer.NewMapKeychain(signerKey)
	signed, err := signing.Sign(unsigned, keychain, hashing.SHA256)
	if err != nil {
		log.Panic(err)
	}

	fmt.Printf("address: %s\n", addr)
	fmt.Printf("signed bytes (hex): %s\n", hex.EncodeToString(signed.Bytes()))
	fmt.Printf("signed string: %s\n", signed.String())
}

func (cli *CommandLine) decode(hexStr string) {
	raw, err := hex.DecodeString(hexStr)
	if err != nil {
		log.Panic(err)
	}
	signed, err := assetchain.DecodeSigned(raw)
	if err != nil {
		log.Panic(err)
	}
	fmt.Printf("tx type tag: 0x%08x\n", signed.Unsigned.TypeTag())
	fmt.Printf("credentials: %d\n", len(signed.Credentials))
}

func bytesOf(fill byte, n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = fill
	}
	return b
}

func (cli *CommandLine) Run() {
	cli.validateArgs()

	demoCMD := flag.NewFlagSet("demo", flag.ExitOnError)
	decodeCMD := flag.NewFlagSet("decode", flag.ExitOnError)

	demoNetwork := demoCMD.Uint("network", 1, "network id")
	demoAmount := demoCMD.Uint64("amount", 1000, "amount to transfer")
	decodeHex := decodeCMD.String("hex", "", "hex-encoded signed tx bytes")

	switch os.Args[1] {
	case "demo":
		if err := demoCMD.Parse(os.Args[2:]); err != nil {
			log.Panic(err)
		}
	case "decode":
		if err := decodeCMD.Parse(os.Args[2:]); err != nil {
			log.Panic(err)
		}
	default:
		cli.printUsage()
		runtime.Goexit()
	}

	if demoCMD.Parsed() {
		cli.demo(uint32(*demoNetwork), *demoAmount)
	}

	if decodeCMD.Parsed() {
		if *decodeHex == "" {
			decodeCMD.Usage()
			runtime.Goexit()
		}
		cli.decode(*decodeHex)
	}
}

func main() {
	defer os.Exit(0)
	cli := CommandLine{}
	cli.Run()
}
