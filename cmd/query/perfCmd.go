package query

import (
	"fmt"
	"sync"
	"time"

	gometrics "github.com/rcrowley/go-metrics"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/ties/voltdb-client-go/cmd/util"
	"github.com/ties/voltdb-client-go/voltdb/session"
)

var (
	perfTestCmd = &cobra.Command{
		Use:     "perf",
		Short:   "Latency benchmark against a server",
		RunE:    runPerf,
		PreRunE: processPerfConfig,
	}
	perfSQL        = "SELECT 1 FROM DUAL"
	perfIterations = 1000
	perfThreads    = 10
)

func init() {
	// add flags
	key := "sql"
	perfTestCmd.Flags().String(key, perfSQL, util.WrapString("The statement to benchmark"))
	key = "iterations"
	perfTestCmd.Flags().Int(key, perfIterations, util.WrapString("Number of statements to issue in total"))
	key = "threads"
	perfTestCmd.Flags().Int(key, perfThreads, util.WrapString("Number of concurrent workers"))
}

func processPerfConfig(cmd *cobra.Command, _ []string) error {
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	// Read the configuration from the command line flags and environment variables
	perfSQL = viper.GetString("sql")
	perfIterations = viper.GetInt("iterations")
	perfThreads = viper.GetInt("threads")

	return nil
}

func runPerf(_ *cobra.Command, _ []string) error {
	defer sess.Shutdown()

	fmt.Println("Latency benchmark")
	fmt.Printf("Statement : %s\n", perfSQL)
	fmt.Printf("Iterations: %d\n", perfIterations)
	fmt.Printf("Threads   : %d\n", perfThreads)
	fmt.Println()

	timer := gometrics.NewTimer()
	errorCount := gometrics.NewCounter()

	var wg sync.WaitGroup
	work := make(chan struct{}, perfThreads)

	for i := 0; i < perfThreads; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range work {
				timer.Time(func() {
					ch, err := sess.Query(perfSQL)
					if err != nil {
						errorCount.Inc(1)
						return
					}
					if _, err := session.BlockForResult(ch); err != nil {
						errorCount.Inc(1)
					}
				})
			}
		}()
	}

	start := time.Now()
	for i := 0; i < perfIterations; i++ {
		work <- struct{}{}
	}
	close(work)
	wg.Wait()
	elapsed := time.Since(start)

	ps := timer.Percentiles([]float64{0.5, 0.95, 0.99})
	fmt.Printf("Completed : %d in %s (%.1f req/s)\n", timer.Count(), elapsed, float64(timer.Count())/elapsed.Seconds())
	fmt.Printf("Errors    : %d\n", errorCount.Count())
	fmt.Printf("Latency   : mean %.2f ms, p50 %.2f ms, p95 %.2f ms, p99 %.2f ms, max %.2f ms\n",
		timer.Mean()/float64(time.Millisecond),
		ps[0]/float64(time.Millisecond),
		ps[1]/float64(time.Millisecond),
		ps[2]/float64(time.Millisecond),
		float64(timer.Max())/float64(time.Millisecond),
	)

	return nil
}
