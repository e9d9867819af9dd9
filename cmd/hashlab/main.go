package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"edu/hashlab/internal/attack"
	"edu/hashlab/internal/avalanche"
	"edu/hashlab/internal/bench"
	"edu/hashlab/internal/credential"
	"edu/hashlab/internal/hashes"
	"edu/hashlab/internal/integrity"
)

var (
	workers int
	config  string
	logPath string
	verbose bool
)

// The hacker's wordlist from the classroom scenario; --wordlist overrides it.
var defaultDictionary = []string{"123456", "password", "admin", "rahasia"}

var rootCmd = &cobra.Command{
	Use:   "hashlab",
	Short: "hashlab - digest evaluation and salting demonstration toolkit",
	Long: `hashlab evaluates cryptographic digest functions along three axes:
raw throughput, output diffusion (avalanche effect), and the effect of
salting on dictionary/rainbow-table attacks against stored credentials.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if config != "" {
			viper.SetConfigFile(config)
			if err := viper.ReadInConfig(); err != nil {
				log.Printf("Warning: Could not read config file: %v", err)
			}
		}
		if workers > 0 {
			viper.Set("workers", workers)
		}
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered digest algorithms",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Registered algorithms:")
		for _, algo := range hashes.List() {
			size, _ := hashes.Size(algo)
			fmt.Printf("  - %-10s (%d-bit digest)\n", algo, size*8)
		}
	},
}

var perfCmd = &cobra.Command{
	Use:   "perf",
	Short: "Measure raw digest throughput for every algorithm",
	RunE:  runPerf,
}

var avalancheCmd = &cobra.Command{
	Use:   "avalanche",
	Short: "Show output diffusion between two near-identical inputs",
	RunE:  runAvalanche,
}

var attackCmd = &cobra.Command{
	Use:   "attack",
	Short: "Replay a dictionary attack against unsalted and salted credentials",
	Long: `Enrolls two users with the same password: one unsalted under sha256,
one salted under sha3-512. Then replays the candidate dictionary against
both, with the attacker knowing the algorithm and stored salt.`,
	RunE: runAttack,
}

var saltbenchCmd = &cobra.Command{
	Use:   "saltbench",
	Short: "Compare salted credential-hashing throughput across algorithms",
	RunE:  runSaltbench,
}

var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Demonstrate file tamper detection via checksums",
	RunE:  runIntegrity,
}

func init() {
	rootCmd.PersistentFlags().IntVarP(&workers, "workers", "t", 0, "Worker goroutines for parallel attacks (default: CPU cores)")
	rootCmd.PersistentFlags().StringVar(&config, "config", "", "Config file path")
	rootCmd.PersistentFlags().StringVar(&logPath, "log", "", "JSONL event log path for attack runs")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose event output")

	perfCmd.Flags().String("input", "Universitas Esa Unggul - TI 2025", "Input text to digest")
	perfCmd.Flags().Int("iterations", 0, "Digest calls per algorithm (default from config)")

	avalancheCmd.Flags().String("text-a", "Password123", "First input")
	avalancheCmd.Flags().String("text-b", "password123", "Second input")
	avalancheCmd.Flags().StringP("algorithm", "a", "sha3-512", "Digest algorithm")

	attackCmd.Flags().String("password", "123456", "Password both users enroll with")
	attackCmd.Flags().StringP("wordlist", "w", "", "Wordlist file (default: built-in dictionary)")
	attackCmd.Flags().Bool("parallel", false, "Shard the dictionary across workers")

	saltbenchCmd.Flags().String("password", "DataMahasiswa2025", "Password to hash")
	saltbenchCmd.Flags().Int("iterations", 0, "Hash calls per algorithm (default from config)")

	integrityCmd.Flags().StringP("algorithm", "a", "sha256", "Digest algorithm")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(perfCmd)
	rootCmd.AddCommand(avalancheCmd)
	rootCmd.AddCommand(attackCmd)
	rootCmd.AddCommand(saltbenchCmd)
	rootCmd.AddCommand(integrityCmd)

	viper.SetEnvPrefix("HASHLAB")
	viper.AutomaticEnv()
	viper.SetDefault("workers", runtime.NumCPU())
	viper.SetDefault("iterations", 100000)
	viper.SetDefault("salt_iterations", 50000)
}

func runPerf(cmd *cobra.Command, args []string) error {
	input, _ := cmd.Flags().GetString("input")
	iterations, _ := cmd.Flags().GetInt("iterations")
	if iterations <= 0 {
		iterations = viper.GetInt("iterations")
	}

	fmt.Printf("Raw throughput, %d iterations, input %q\n\n", iterations, input)
	ms, err := bench.RunAll([]byte(input), iterations)
	if err != nil {
		return err
	}
	for _, m := range ms {
		fmt.Printf("  %-10s %10v  (%.0f hashes/sec)\n", m.Algorithm, m.Elapsed, m.HashesPerSec)
	}
	if best := bench.Fastest(ms); best >= 0 {
		fmt.Printf("\nFastest: %s\n", ms[best].Algorithm)
	}
	return nil
}

func runAvalanche(cmd *cobra.Command, args []string) error {
	textA, _ := cmd.Flags().GetString("text-a")
	textB, _ := cmd.Flags().GetString("text-b")
	algo, _ := cmd.Flags().GetString("algorithm")

	cmp, err := avalanche.Compare(textA, textB, algo)
	if err != nil {
		return err
	}

	fmt.Printf("Input A: %q\nInput B: %q\nAlgorithm: %s\n\n", textA, textB, algo)
	fmt.Printf("Digest A: %s...\n", cmp.DigestA[:30])
	fmt.Printf("Digest B: %s...\n", cmp.DigestB[:30])
	fmt.Printf("\nDiffering hex characters: %.2f%%\n", cmp.DiffPercent)
	if cmp.DiffPercent > 50 {
		fmt.Println("Above 50%: the output changed beyond recognition for a minimal input change.")
	}
	return nil
}

func runAttack(cmd *cobra.Command, args []string) error {
	password, _ := cmd.Flags().GetString("password")
	wordlist, _ := cmd.Flags().GetString("wordlist")
	parallel, _ := cmd.Flags().GetBool("parallel")

	dictionary := defaultDictionary
	if wordlist != "" {
		var err error
		dictionary, err = attack.LoadDictionary(wordlist)
		if err != nil {
			return err
		}
		fmt.Printf("Loaded %d candidates from %s\n", len(dictionary), wordlist)
	}

	store := credential.NewStore()
	weak, err := store.Enroll("user_weak", password, "sha256", false)
	if err != nil {
		return err
	}
	safe, err := store.Enroll("user_safe", password, "sha3-512", true)
	if err != nil {
		return err
	}

	sim := attack.New(attack.Options{
		Workers: viper.GetInt("workers"),
		LogPath: logPath,
		Event: func(event string, kv map[string]any) {
			if verbose {
				fmt.Printf("[%s] ", event)
				for k, v := range kv {
					fmt.Printf("%s=%v ", k, v)
				}
				fmt.Println()
			}
		},
	})
	defer sim.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\nInterrupted, stopping...")
		cancel()
	}()

	attempt := func(cred credential.Credential) (attack.Result, error) {
		if parallel {
			return sim.AttemptParallel(ctx, cred, dictionary)
		}
		return sim.Attempt(cred, dictionary)
	}

	fmt.Printf("\n[Target: %s] unsalted %s\n", weak.UserID, weak.Algorithm)
	report(attempt(weak))

	fmt.Printf("\n[Target: %s] salted %s (attacker knows the salt)\n", safe.UserID, safe.Algorithm)
	report(attempt(safe))

	fmt.Println("\nUnique per-user salts do not stop a targeted brute force; they stop one")
	fmt.Println("precomputed table from being reused against every user in the store.")
	return nil
}

func report(res attack.Result, err error) {
	if err != nil {
		fmt.Printf("  attack failed: %v\n", err)
		return
	}
	if res.Found {
		fmt.Printf("  CRACKED: password %q after %d candidates in %v\n", res.Password, res.Tried, res.Duration)
	} else {
		fmt.Printf("  survived: %d candidates exhausted in %v\n", res.Tried, res.Duration)
	}
}

func runSaltbench(cmd *cobra.Command, args []string) error {
	password, _ := cmd.Flags().GetString("password")
	iterations, _ := cmd.Flags().GetInt("iterations")
	if iterations <= 0 {
		iterations = viper.GetInt("salt_iterations")
	}

	fmt.Printf("Salted credential hashing, %d iterations, password %q\n\n", iterations, password)
	ms := make([]bench.Measurement, 0, len(hashes.List()))
	for _, algo := range hashes.List() {
		m, err := bench.RunSalted(algo, password, iterations)
		if err != nil {
			return err
		}
		ms = append(ms, m)
		fmt.Printf("  %-10s %10v  (%.0f hashes/sec)\n", m.Algorithm, m.Elapsed, m.HashesPerSec)
	}
	if best := bench.Fastest(ms); best >= 0 {
		fmt.Printf("\nFastest with salting: %s\n", ms[best].Algorithm)
	}
	return nil
}

func runIntegrity(cmd *cobra.Command, args []string) error {
	algo, _ := cmd.Flags().GetString("algorithm")

	path := filepath.Join(os.TempDir(), "hashlab_integrity_demo.txt")
	defer os.Remove(path)

	original := "Important financial record: amount 1000000000"
	if err := os.WriteFile(path, []byte(original), 0o644); err != nil {
		return err
	}
	sum, err := integrity.Checksum(path, algo)
	if err != nil {
		return err
	}
	fmt.Printf("1. Document written. %s checksum: %s\n", algo, sum)

	fmt.Println("2. Simulated tampering: the amount in the file is altered...")
	tampered := "Important financial record: amount 9000000000"
	if err := os.WriteFile(path, []byte(tampered), 0o644); err != nil {
		return err
	}

	ok, current, err := integrity.Verify(path, algo, sum)
	if err != nil {
		return err
	}
	fmt.Printf("3. Current checksum: %s\n", current)
	if ok {
		fmt.Println("Status: intact.")
	} else {
		fmt.Println("Status: MODIFIED - integrity check failed.")
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
