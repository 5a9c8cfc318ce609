// verify_pointcloud - 点云生成验证程序
// 生成一个点云并检查球面约束、颜色范围和分布均匀性，任一项失败时以非零状态退出
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand"
	"os"

	"github.com/web3events/landing/pkg/config"
	"github.com/web3events/landing/pkg/pointcloud"
)

// ========== 验证报告结构 ==========

type ValidationReport struct {
	TestName string
	Passed   bool
	Message  string
}

var validationReports []ValidationReport

func addReport(testName string, passed bool, message string) {
	validationReports = append(validationReports, ValidationReport{
		TestName: testName,
		Passed:   passed,
		Message:  message,
	})
	status := "✗ FAIL"
	if passed {
		status = "✓ PASS"
	}
	log.Printf("%s | %-24s | %s", status, testName, message)
}

// ========== 验证函数 ==========

// validateSphere 每个点都在单位球面上
func validateSphere(pc pointcloud.PointCloud, tol float64) {
	if err := pc.Validate(tol); err != nil {
		addReport("单位球面", false, err.Error())
		return
	}
	addReport("单位球面", true, fmt.Sprintf("%d 个点, |p|-1 <= %g", pc.Len(), tol))
}

// validateColors 每个通道在 [0, 1]
func validateColors(pc pointcloud.PointCloud) {
	for i, c := range pc.Colors {
		if c < 0 || c > 1 || math.IsNaN(float64(c)) {
			addReport("颜色范围", false, fmt.Sprintf("colors[%d] = %v", i, c))
			return
		}
	}
	addReport("颜色范围", true, "所有通道均在 [0, 1]")
}

// validateHemispheres 沿三个轴的正负半球点数平衡
func validateHemispheres(pc pointcloud.PointCloud, sigmas float64) {
	n := float64(pc.Len())
	if n == 0 {
		addReport("半球平衡", true, "空点云")
		return
	}
	// 二项分布标准差 sqrt(n)/2
	limit := sigmas * math.Sqrt(n) / 2
	for axis, name := range []string{"x", "y", "z"} {
		positive := 0
		for i := axis; i < len(pc.Positions); i += 3 {
			if pc.Positions[i] > 0 {
				positive++
			}
		}
		diff := math.Abs(float64(positive) - n/2)
		if diff > limit {
			addReport("半球平衡", false, fmt.Sprintf("%s>0: %d / %d (偏差 %.1f > %.1f)", name, positive, int(n), diff, limit))
			return
		}
	}
	addReport("半球平衡", true, fmt.Sprintf("三个轴的偏差均 <= %.1f", limit))
}

// validateZBins z 在 [-1, 1] 上均匀分布（球面均匀的等价条件）
func validateZBins(pc pointcloud.PointCloud, bins int, sigmas float64) {
	n := pc.Len()
	if n == 0 || bins <= 0 {
		addReport("z 分布", true, "空点云")
		return
	}
	counts := make([]int, bins)
	for i := 2; i < len(pc.Positions); i += 3 {
		idx := int((float64(pc.Positions[i]) + 1) / 2 * float64(bins))
		idx = min(max(idx, 0), bins-1)
		counts[idx]++
	}

	expected := float64(n) / float64(bins)
	p := 1 / float64(bins)
	limit := sigmas * math.Sqrt(float64(n)*p*(1-p))
	for i, c := range counts {
		if math.Abs(float64(c)-expected) > limit {
			addReport("z 分布", false, fmt.Sprintf("bin %d: %d, 期望 %.0f ± %.1f", i, c, expected, limit))
			return
		}
	}
	addReport("z 分布", true, fmt.Sprintf("%d 个区间: %v", bins, counts))
}

func main() {
	count := flag.Int("count", 4000, "点数")
	seed := flag.Int64("seed", 1, "随机种子")
	tol := flag.Float64("tolerance", 1e-5, "球面误差容限")
	bins := flag.Int("bins", 8, "z 分布区间数")
	sigmas := flag.Float64("sigmas", 4, "统计检验允许的标准差倍数")
	flag.Parse()

	log.SetFlags(0)

	opts := config.DefaultLandingConfig().PointCloudOptions()
	pc := pointcloud.Generate(*count, rand.New(rand.NewSource(*seed)), opts)

	log.Printf("生成点云: %d 个点 (seed=%d, S=%.2f, L=%.2f)", pc.Len(), *seed, opts.Saturation, opts.Lightness)

	validateSphere(pc, *tol)
	validateColors(pc)
	validateHemispheres(pc, *sigmas)
	validateZBins(pc, *bins, *sigmas)

	failed := 0
	for _, r := range validationReports {
		if !r.Passed {
			failed++
		}
	}
	log.Printf("\n%d/%d 项通过", len(validationReports)-failed, len(validationReports))
	if failed > 0 {
		os.Exit(1)
	}
}
