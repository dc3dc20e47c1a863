// main.go -- rtcrack: generate, search and crack 32-bit rainbow
// tables from the command line.
//
// (c) 2024 opencoff contributors
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.

package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/opencoff/go-rtcrack"

	flag "github.com/opencoff/pflag"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	rtcrack.LoadPlugins(".")

	cmd := os.Args[1]
	args := os.Args[2:]

	var err error
	switch cmd {
	case "generate":
		err = cmdGenerate(args)
	case "search":
		err = cmdSearch(args)
	case "crack":
		err = cmdCrack(args)
	case "verify":
		err = cmdVerify(args)
	default:
		usage()
		os.Exit(1)
	}

	if err != nil {
		die("%s", err)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `rtcrack - offline rainbow-table engine

Usage:
  %s generate [-d dir] <chain_num> <chain_len> <table_count> <hash_name>
  %s search   <table_file> <target_hash_hex>
  %s crack    <hash_name> <target_hash_hex>
  %s verify   <table_file>
`, os.Args[0], os.Args[0], os.Args[0], os.Args[0])
}

func cmdGenerate(args []string) error {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	dir := fs.StringP("dir", "d", "", "Write tables to `DIR` instead of the current directory")
	fs.Parse(args)

	rest := fs.Args()
	if len(rest) != 4 {
		return fmt.Errorf("generate: need <chain_num> <chain_len> <table_count> <hash_name>")
	}

	chainNum, err := strconv.ParseUint(rest[0], 10, 64)
	if err != nil {
		return fmt.Errorf("generate: bad chain_num %q: %w", rest[0], err)
	}
	chainLen, err := strconv.ParseUint(rest[1], 10, 64)
	if err != nil {
		return fmt.Errorf("generate: bad chain_len %q: %w", rest[1], err)
	}
	tableCount, err := strconv.ParseUint(rest[2], 10, 32)
	if err != nil {
		return fmt.Errorf("generate: bad table_count %q: %w", rest[2], err)
	}
	hashName := rest[3]

	if err := rtcrack.GenerateTables(*dir, hashName, chainNum, chainLen, uint(tableCount)); err != nil {
		return err
	}

	fmt.Printf("generated %d table(s) for %s\n", tableCount, hashName)
	return nil
}

func cmdSearch(args []string) error {
	fs := flag.NewFlagSet("search", flag.ExitOnError)
	fs.Parse(args)

	rest := fs.Args()
	if len(rest) != 2 {
		return fmt.Errorf("search: need <table_file> <target_hash_hex>")
	}
	tableFile, hexDigest := rest[0], rest[1]

	hashName, _, _, err := rtcrack.DecodeTableName(filepath.Base(tableFile))
	if err != nil {
		return fmt.Errorf("search: %w", err)
	}

	sess, err := rtcrack.NewSession(hashName)
	if err != nil {
		return fmt.Errorf("search: %w", err)
	}

	target, err := decodeHex(hexDigest, sess.DigestLen)
	if err != nil {
		return fmt.Errorf("search: %w", err)
	}

	r, err := sess.SearchFile(tableFile, target)
	if err != nil {
		return fmt.Errorf("search: %w", err)
	}

	printResult(r)
	return nil
}

func cmdCrack(args []string) error {
	fs := flag.NewFlagSet("crack", flag.ExitOnError)
	fs.Parse(args)

	rest := fs.Args()
	if len(rest) != 2 {
		return fmt.Errorf("crack: need <hash_name> <target_hash_hex>")
	}
	hashName, hexDigest := rest[0], rest[1]

	sess, err := rtcrack.NewSession(hashName)
	if err != nil {
		return fmt.Errorf("crack: %w", err)
	}

	target, err := decodeHex(hexDigest, sess.DigestLen)
	if err != nil {
		return fmt.Errorf("crack: %w", err)
	}

	printResult(sess.Crack(target))
	return nil
}

func cmdVerify(args []string) error {
	fs := flag.NewFlagSet("verify", flag.ExitOnError)
	fs.Parse(args)

	rest := fs.Args()
	if len(rest) != 1 {
		return fmt.Errorf("verify: need <table_file>")
	}

	if err := rtcrack.VerifyTable(rest[0]); err != nil {
		return err
	}

	fmt.Printf("%s: OK\n", rest[0])
	return nil
}

// decodeHex decodes a lowercase hex digest of exactly 2*digestLen
// characters -- e.g. 32 chars for the default 128-bit MD5 digest.
func decodeHex(s string, digestLen int) ([]byte, error) {
	if len(s) != 2*digestLen {
		return nil, fmt.Errorf("target hash must be %d hex chars, got %d", 2*digestLen, len(s))
	}
	return hex.DecodeString(s)
}

func printResult(r rtcrack.Result) {
	if r.Found {
		fmt.Printf("Seed found: %d\n", r.Seed)
	} else {
		fmt.Println("Seed not found")
	}
}

func die(f string, v ...interface{}) {
	warn(f, v...)
	os.Exit(1)
}

func warn(f string, v ...interface{}) {
	s := fmt.Sprintf(f, v...)
	if n := len(s); n == 0 || s[n-1] != '\n' {
		s += "\n"
	}
	fmt.Fprintf(os.Stderr, "%s: %s", filepath.Base(os.Args[0]), s)
}
