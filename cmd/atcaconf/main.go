// Copyright 2024 Canonical Ltd.
// Licensed under the LGPLv3 with static-linking exception.
// See LICENCE file for details.

// atcaconf decodes configuration zone dumps into human readable slot and
// key configuration listings. It is a diagnostic aid: the driver never
// consults it.
package main

import (
	"encoding/hex"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/canonical/go-atca"
)

var flagInput *cli.StringFlag = &cli.StringFlag{
	Name:  "input",
	Usage: "Path to a configuration zone dump (128 bytes, raw or hex)",
}

func main() {
	app := &cli.App{
		Name:  "atcaconf",
		Usage: "decode crypto-authentication device configuration",
		Commands: []*cli.Command{
			{
				Name:   "decode",
				Usage:  "decode a configuration zone dump",
				Flags:  []cli.Flag{flagInput},
				Action: decodeDump,
			},
			{
				Name:   "profile",
				Usage:  "print the built-in Trust&Go provisioning profile",
				Action: decodeProfile,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func readDump(path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(raw) == atca.ConfigZoneSize {
		return raw, nil
	}

	// Not raw; try a hex dump with whitespace.
	cleaned := strings.Join(strings.Fields(string(raw)), "")
	dump, err := hex.DecodeString(cleaned)
	if err != nil {
		return nil, fmt.Errorf("%s is neither a raw nor a hex configuration dump: %w", path, err)
	}
	if len(dump) != atca.ConfigZoneSize {
		return nil, fmt.Errorf("configuration dump has %d bytes, want %d", len(dump), atca.ConfigZoneSize)
	}
	return dump, nil
}

func decodeDump(c *cli.Context) error {
	path := c.String("input")
	if path == "" {
		return fmt.Errorf("no input file supplied")
	}
	dump, err := readDump(path)
	if err != nil {
		return err
	}

	slotConfigs, err := atca.DecodeSlotConfigs(dump[atca.SlotConfigIndex : atca.SlotConfigIndex+atca.NumSlots*2])
	if err != nil {
		return err
	}
	keyConfigs, err := atca.DecodeKeyConfigs(dump[atca.KeyConfigIndex : atca.KeyConfigIndex+atca.NumSlots*2])
	if err != nil {
		return err
	}

	printTables(slotConfigs, keyConfigs)
	return nil
}

func decodeProfile(c *cli.Context) error {
	printTables(atca.TrustAndGoSlotConfigs(), atca.TrustAndGoKeyConfigs())
	return nil
}

func printTables(slotConfigs [atca.NumSlots]atca.SlotConfig, keyConfigs [atca.NumSlots]atca.KeyConfig) {
	for i := 0; i < atca.NumSlots; i++ {
		printSlot(atca.Slot(i), slotConfigs[i], keyConfigs[i])
	}
}

func printSlot(slot atca.Slot, sc atca.SlotConfig, kc atca.KeyConfig) {
	fmt.Printf("Slot %d [SlotConfig %#06x, KeyConfig %#06x]:\n", slot, uint16(sc), uint16(kc))

	if kc.Private() {
		fmt.Printf("  Private: %v (%v)\n", kc.Private(), kc.KeyType())
		fmt.Printf("  External signatures enabled: %v\n", sc.ExternalSignatures())
		fmt.Printf("  Internal signatures enabled: %v\n", sc.InternalSignatures())
		fmt.Printf("  ECDH permitted: %v\n", sc.ECDHPermitted())
		if sc.ECDHPermitted() {
			fmt.Printf("  ECDH secret to slot N|1: %v\n", sc.ECDHSecretToAdjacentSlot())
		}
	} else {
		fmt.Printf("  Key type: %v\n", kc.KeyType())
		fmt.Printf("  Read key: %#04x\n", sc.ReadKey())
	}

	if read, err := sc.ReadAccess(); err != nil {
		fmt.Printf("  Read: %v\n", err)
	} else {
		fmt.Printf("  Read: %v\n", read)
	}
	if write, err := sc.WriteAccess(); err != nil {
		fmt.Printf("  Write: %v\n", err)
	} else {
		fmt.Printf("  Write: %v\n", write)
	}

	fmt.Printf("  No MAC: %v\n", sc.NoMac())
	fmt.Printf("  Limited use: %v\n", sc.LimitedUse())
	fmt.Printf("  Lockable: %v\n", kc.Lockable())
	fmt.Printf("  Random nonce required: %v\n", kc.ReqRandom())
	if kc.ReqAuth() {
		fmt.Printf("  Prior authorization required, auth key: %v\n", kc.AuthKey())
	}
	if kc.PersistentDisable() {
		fmt.Printf("  Gated on the persistent latch\n")
	}
	if kc.X509ID() != 0 {
		fmt.Printf("  X.509 format index: %d\n", kc.X509ID())
	}
	fmt.Println()
}
