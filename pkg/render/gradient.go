package render

// AddGradientStops 在 (0, 0, w, h) 区域内添加多段竖直渐变
// stops 自上而下均匀分布；只有一个站点时为纯色填充
func AddGradientStops(b *Batch, w, h float64, stops []Color) {
	switch len(stops) {
	case 0:
		return
	case 1:
		b.AddRect(0, 0, w, h, stops[0])
		return
	}

	bands := len(stops) - 1
	bandHeight := h / float64(bands)
	for i := 0; i < bands; i++ {
		b.AddVerticalGradient(0, float64(i)*bandHeight, w, bandHeight, stops[i], stops[i+1])
	}
}
