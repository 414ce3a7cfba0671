package numerics

import "math"

// ellipticBsDsMaclaurin evaluates the Maclaurin series of Bs(y|m)/s and
// Ds(y|m)/(s·y) truncated after the y¹¹ term, [Fuku11a].
func ellipticBsDsMaclaurin(y, m float64) (b, d float64) {
	const (
		f10 = 1.0 / 6.0
		f20 = 3.0 / 40.0
		f21 = 2.0 / 40.0
		f30 = 5.0 / 112.0
		f31 = 3.0 / 112.0
		f40 = 35.0 / 1152.0
		f41 = 20.0 / 1152.0
		f42 = 18.0 / 1152.0
		f50 = 63.0 / 2816.0
		f51 = 35.0 / 2816.0
		f52 = 30.0 / 2816.0
		f60 = 231.0 / 13312.0
		f61 = 126.0 / 13312.0
		f62 = 105.0 / 13312.0
		f63 = 100.0 / 13312.0
		f70 = 429.0 / 30720.0
		f71 = 231.0 / 30720.0
		f72 = 189.0 / 30720.0
		f73 = 175.0 / 30720.0
		f80 = 6435.0 / 557056.0
		f81 = 3432.0 / 557056.0
		f82 = 2722.0 / 557056.0
		f83 = 2520.0 / 557056.0
		f84 = 2450.0 / 557056.0
		f90 = 12155.0 / 1245184.0
		f91 = 6435.0 / 1245184.0
		f92 = 5148.0 / 1245184.0
		f93 = 4620.0 / 1245184.0
		f94 = 4410.0 / 1245184.0
		fa0 = 46189.0 / 5505024.0
		fa1 = 24310.0 / 5505024.0
		fa2 = 19305.0 / 5505024.0
		fa3 = 17160.0 / 5505024.0
		fa4 = 16170.0 / 5505024.0
		fa5 = 15876.0 / 5505024.0
		fb0 = 88179.0 / 12058624.0
		fb1 = 46189.0 / 12058624.0
		fb2 = 36465.0 / 12058624.0
		fb3 = 32175.0 / 12058624.0
		fb4 = 30030.0 / 12058624.0
		fb5 = 29106.0 / 12058624.0

		a1 = 3.0 / 5.0
		a2 = 5.0 / 7.0
		a3 = 7.0 / 9.0
		a4 = 9.0 / 11.0
		a5 = 11.0 / 13.0
		a6 = 13.0 / 15.0
		a7 = 15.0 / 17.0
		a8 = 17.0 / 19.0
		a9 = 19.0 / 21.0
		aa = 21.0 / 23.0
		ab = 23.0 / 25.0

		d0 = 1.0 / 3.0
	)

	f1 := f10 + m*f10
	f2 := f20 + m*(f21+m*f20)
	f3 := f30 + m*(f31+m*(f31+m*f30))
	f4 := f40 + m*(f41+m*(f42+m*(f41+m*f40)))
	f5 := f50 + m*(f51+m*(f52+m*(f52+m*(f51+m*f50))))
	f6 := f60 + m*(f61+m*(f62+m*(f63+m*(f62+m*(f61+m*f60)))))
	f7 := f70 + m*(f71+m*(f72+m*(f73+m*(f73+m*(f72+m*(f71+m*f70))))))
	f8 := f80 + m*(f81+m*(f82+m*(f83+m*(f84+m*(f83+m*(f82+m*(f81+m*f80)))))))
	f9 := f90 + m*(f91+m*(f92+m*(f93+m*(f94+m*(f94+m*(f93+m*(f92+m*(f91+m*f90))))))))
	fa := fa0 + m*(fa1+m*(fa2+m*(fa3+m*(fa4+m*(fa5+m*(fa4+m*(fa3+m*(fa2+m*(fa1+m*fa0)))))))))
	fb := fb0 + m*(fb1+m*(fb2+m*(fb3+m*(fb4+m*(fb5+m*(fb5+m*(fb4+m*(fb3+m*(fb2+m*(fb1+m*fb0))))))))))

	d1 := f1 * a1
	d2 := f2 * a2
	d3 := f3 * a3
	d4 := f4 * a4
	d5 := f5 * a5
	d6 := f6 * a6
	d7 := f7 * a7
	d8 := f8 * a8
	d9 := f9 * a9
	da := fa * aa
	db := fb * ab

	d = d0 + y*(d1+y*(d2+y*(d3+y*(d4+y*(d5+y*(d6+y*(d7+y*(d8+y*(d9+y*(da+y*db))))))))))

	b1 := f1 - d0
	b2 := f2 - d1
	b3 := f3 - d2
	b4 := f4 - d3
	b5 := f5 - d4
	b6 := f6 - d5
	b7 := f7 - d6
	b8 := f8 - d7
	b9 := f9 - d8
	ba := fa - d9
	bb := fb - da

	b = 1.0 + y*(b1+y*(b2+y*(b3+y*(b4+y*(b5+y*(b6+y*(b7+y*(b8+y*(b9+y*(ba+y*bb))))))))))
	return b, d
}

// ellipticJsMaclaurin evaluates the Maclaurin series of Js(y, n|m)/s,
// [Fuku11c], with the truncation order chosen from y.
func ellipticJsMaclaurin(y, n, m float64) float64 {
	const (
		j100 = 1.0 / 3.0

		j200 = 1.0 / 10.0
		j201 = 2.0 / 10.0
		j210 = 1.0 / 10.0

		j300 = 3.0 / 56.0
		j301 = 4.0 / 56.0
		j302 = 8.0 / 56.0
		j310 = 2.0 / 56.0
		j311 = 4.0 / 56.0
		j320 = 3.0 / 56.0

		j400 = 5.0 / 144.0
		j401 = 6.0 / 144.0
		j402 = 8.0 / 144.0
		j403 = 16.0 / 144.0
		j410 = 3.0 / 144.0
		j411 = 4.0 / 144.0
		j412 = 8.0 / 144.0
		j420 = 3.0 / 144.0
		j421 = 6.0 / 144.0
		j430 = 5.0 / 144.0

		j500 = 35.0 / 1408.0
		j501 = 40.0 / 1408.0
		j502 = 48.0 / 1408.0
		j503 = 64.0 / 1408.0
		j504 = 128.0 / 1408.0
		j510 = 20.0 / 1408.0
		j511 = 24.0 / 1408.0
		j512 = 32.0 / 1408.0
		j513 = 64.0 / 1408.0
		j520 = 18.0 / 1408.0
		j521 = 24.0 / 1408.0
		j522 = 48.0 / 1408.0
		j530 = 20.0 / 1408.0
		j531 = 40.0 / 1408.0
		j540 = 35.0 / 1408.0

		j600 = 63.0 / 3328.0
		j601 = 70.0 / 3328.0
		j602 = 80.0 / 3328.0
		j603 = 96.0 / 3328.0
		j604 = 128.0 / 3328.0
		j605 = 256.0 / 3328.0
		j610 = 35.0 / 3328.0
		j611 = 40.0 / 3328.0
		j612 = 48.0 / 3328.0
		j613 = 64.0 / 3328.0
		j614 = 128.0 / 3328.0
		j620 = 30.0 / 3328.0
		j621 = 36.0 / 3328.0
		j622 = 48.0 / 3328.0
		j623 = 96.0 / 3328.0
		j630 = 30.0 / 3328.0
		j631 = 40.0 / 3328.0
		j632 = 80.0 / 3328.0
		j640 = 35.0 / 3328.0
		j641 = 70.0 / 3328.0
		j650 = 63.0 / 3328.0

		j700 = 231.0 / 15360.0
		j701 = 252.0 / 15360.0
		j702 = 280.0 / 15360.0
		j703 = 320.0 / 15360.0
		j704 = 384.0 / 15360.0
		j705 = 512.0 / 15360.0
		j706 = 1024.0 / 15360.0
		j710 = 126.0 / 15360.0
		j711 = 140.0 / 15360.0
		j712 = 160.0 / 15360.0
		j713 = 192.0 / 15360.0
		j714 = 256.0 / 15360.0
		j715 = 512.0 / 15360.0
		j720 = 105.0 / 15360.0
		j721 = 120.0 / 15360.0
		j722 = 144.0 / 15360.0
		j723 = 192.0 / 15360.0
		j724 = 384.0 / 15360.0
		j730 = 100.0 / 15360.0
		j731 = 120.0 / 15360.0
		j732 = 160.0 / 15360.0
		j733 = 320.0 / 15360.0
		j740 = 105.0 / 15360.0
		j741 = 140.0 / 15360.0
		j742 = 280.0 / 15360.0
		j750 = 126.0 / 15360.0
		j751 = 252.0 / 15360.0
		j760 = 231.0 / 15360.0

		j800 = 429.0 / 34816.0
		j801 = 462.0 / 34816.0
		j802 = 504.0 / 34816.0
		j803 = 560.0 / 34816.0
		j804 = 640.0 / 34816.0
		j805 = 768.0 / 34816.0
		j806 = 1024.0 / 34816.0
		j807 = 2048.0 / 34816.0
		j810 = 231.0 / 34816.0
		j811 = 252.0 / 34816.0
		j812 = 280.0 / 34816.0
		j813 = 320.0 / 34816.0
		j814 = 384.0 / 34816.0
		j815 = 512.0 / 34816.0
		j816 = 1024.0 / 34816.0
		j820 = 189.0 / 34816.0
		j821 = 210.0 / 34816.0
		j822 = 240.0 / 34816.0
		j823 = 288.0 / 34816.0
		j824 = 284.0 / 34816.0
		j825 = 768.0 / 34816.0
		j830 = 175.0 / 34816.0
		j831 = 200.0 / 34816.0
		j832 = 240.0 / 34816.0
		j833 = 320.0 / 34816.0
		j834 = 640.0 / 34816.0
		j840 = 175.0 / 34816.0
		j841 = 210.0 / 34816.0
		j842 = 280.0 / 34816.0
		j843 = 560.0 / 34816.0
		j850 = 189.0 / 34816.0
		j851 = 252.0 / 34816.0
		j852 = 504.0 / 34816.0
		j860 = 231.0 / 34816.0
		j861 = 462.0 / 34816.0
		j870 = 429.0 / 34816.0

		j900 = 6435.0 / 622592.0
		j901 = 6864.0 / 622592.0
		j902 = 7392.0 / 622592.0
		j903 = 8064.0 / 622592.0
		j904 = 8960.0 / 622592.0
		j905 = 10240.0 / 622592.0
		j906 = 12288.0 / 622592.0
		j907 = 16384.0 / 622592.0
		j908 = 32768.0 / 622592.0
		j910 = 3432.0 / 622592.0
		j911 = 3696.0 / 622592.0
		j912 = 4032.0 / 622592.0
		j913 = 4480.0 / 622592.0
		j914 = 5120.0 / 622592.0
		j915 = 6144.0 / 622592.0
		j916 = 8192.0 / 622592.0
		j917 = 16384.0 / 622592.0
		j920 = 2772.0 / 622592.0
		j921 = 3024.0 / 622592.0
		j922 = 3360.0 / 622592.0
		j923 = 3840.0 / 622592.0
		j924 = 4608.0 / 622592.0
		j925 = 6144.0 / 622592.0
		j926 = 12288.0 / 622592.0
		j930 = 2520.0 / 622592.0
		j931 = 2800.0 / 622592.0
		j932 = 3200.0 / 622592.0
		j933 = 3840.0 / 622592.0
		j934 = 5120.0 / 622592.0
		j935 = 10240.0 / 622592.0
		j940 = 2450.0 / 622592.0
		j941 = 2800.0 / 622592.0
		j942 = 3360.0 / 622592.0
		j943 = 4480.0 / 622592.0
		j944 = 8960.0 / 622592.0
		j950 = 2520.0 / 622592.0
		j951 = 3024.0 / 622592.0
		j952 = 4032.0 / 622592.0
		j953 = 8064.0 / 622592.0
		j960 = 2772.0 / 622592.0
		j961 = 3696.0 / 622592.0
		j962 = 7392.0 / 622592.0
		j970 = 3432.0 / 622592.0
		j971 = 6864.0 / 622592.0
		j980 = 6435.0 / 622592.0

		ja00 = 12155.0 / 1376256.0
		ja01 = 12870.0 / 1376256.0
		ja02 = 13728.0 / 1376256.0
		ja03 = 14784.0 / 1376256.0
		ja04 = 16128.0 / 1376256.0
		ja05 = 17920.0 / 1376256.0
		ja06 = 20480.0 / 1376256.0
		ja07 = 24576.0 / 1376256.0
		ja08 = 32768.0 / 1376256.0
		ja09 = 65536.0 / 1376256.0
		ja10 = 6435.0 / 1376256.0
		ja11 = 6864.0 / 1376256.0
		ja12 = 7392.0 / 1376256.0
		ja13 = 8064.0 / 1376256.0
		ja14 = 8960.0 / 1376256.0
		ja15 = 10240.0 / 1376256.0
		ja16 = 12288.0 / 1376256.0
		ja17 = 16384.0 / 1376256.0
		ja18 = 32768.0 / 1376256.0
		ja20 = 5148.0 / 1376256.0
		ja21 = 5544.0 / 1376256.0
		ja22 = 6048.0 / 1376256.0
		ja23 = 6720.0 / 1376256.0
		ja24 = 7680.0 / 1376256.0
		ja25 = 9216.0 / 1376256.0
		ja26 = 12288.0 / 1376256.0
		ja27 = 24576.0 / 1376256.0
		ja30 = 4620.0 / 1376256.0
		ja31 = 5040.0 / 1376256.0
		ja32 = 5600.0 / 1376256.0
		ja33 = 6400.0 / 1376256.0
		ja34 = 7680.0 / 1376256.0
		ja35 = 10240.0 / 1376256.0
		ja36 = 20480.0 / 1376256.0
		ja40 = 4410.0 / 1376256.0
		ja41 = 4900.0 / 1376256.0
		ja42 = 5600.0 / 1376256.0
		ja43 = 6720.0 / 1376256.0
		ja44 = 8960.0 / 1376256.0
		ja45 = 17920.0 / 1376256.0
		ja50 = 4410.0 / 1376256.0
		ja51 = 5040.0 / 1376256.0
		ja52 = 6048.0 / 1376256.0
		ja53 = 8064.0 / 1376256.0
		ja54 = 16128.0 / 1376256.0
		ja60 = 4620.0 / 1376256.0
		ja61 = 5544.0 / 1376256.0
		ja62 = 7392.0 / 1376256.0
		ja63 = 14784.0 / 1376256.0
		ja70 = 5148.0 / 1376256.0
		ja71 = 6864.0 / 1376256.0
		ja72 = 13728.0 / 1376256.0
		ja80 = 6435.0 / 1376256.0
		ja81 = 12870.0 / 1376256.0
		ja90 = 12155.0 / 1376256.0
	)

	j1 := j100
	j2 := j200 + n*j201 + m*j210
	j3 := j300 + n*(j301+n*j302) + m*(j310+n*j311+m*j320)
	j4 := j400 + n*(j401+n*(j402+n*j403)) +
		m*(j410+n*(j411+n*j412)+m*(j420+n*j421+m*j430))
	j5 := j500 + n*(j501+n*(j502+n*(j503+n*j504))) +
		m*(j510+n*(j511+n*(j512+n*j513))+
			m*(j520+n*(j521+n*j522)+
				m*(j530+n*j531+m*j540)))
	if y <= 6.0369310e-04 {
		return y * (j1 + y*(j2+y*(j3+y*(j4+y*j5))))
	}

	j6 := j600 + n*(j601+n*(j602+n*(j603+n*(j604+n*j605)))) +
		m*(j610+n*(j611+n*(j612+n*(j613+n*j614)))+
			m*(j620+n*(j621+n*(j622+n*j623))+
				m*(j630+n*(j631+n*j632)+
					m*(j640+n*j641+m*j650))))
	if y <= 2.0727505e-03 {
		return y * (j1 + y*(j2+y*(j3+y*(j4+y*(j5+y*j6)))))
	}

	j7 := j700 + n*(j701+n*(j702+n*(j703+n*(j704+n*(j705+n*j706))))) +
		m*(j710+n*(j711+n*(j712+n*(j713+n*(j714+n*j715))))+
			m*(j720+n*(j721+n*(j722+n*(j723+n*j724)))+
				m*(j730+n*(j731+n*(j732+n*j733))+
					m*(j740+n*(j741+n*j742)+
						m*(j750+n*j751+m*j760)))))
	if y <= 5.0047026e-03 {
		return y * (j1 + y*(j2+y*(j3+y*(j4+y*(j5+y*(j6+y*j7))))))
	}

	j8 := j800 + n*(j801+n*(j802+n*(j803+n*(j804+n*(j805+n*(j806+n*j807)))))) +
		m*(j810+n*(j811+n*(j812+n*(j813+n*(j814+n*(j815+n*j816)))))+
			m*(j820+n*(j821+n*(j822+n*(j823+n*(j824+n*j825))))+
				m*(j830+n*(j831+n*(j832+n*(j833+n*j834)))+
					m*(j840+n*(j841+n*(j842+n*j843))+
						m*(j850+n*(j851+n*j852)+
							m*(j860+n*j861+m*j870))))))
	if y <= 9.6961652e-03 {
		return y * (j1 + y*(j2+y*(j3+y*(j4+y*(j5+y*(j6+y*(j7+y*j8)))))))
	}

	j9 := j900 + n*(j901+n*(j902+n*(j903+n*(j904+n*(j905+n*(j906+n*(j907+n*j908))))))) +
		m*(j910+n*(j911+n*(j912+n*(j913+n*(j914+n*(j915+n*(j916+n*j917))))))+
			m*(j920+n*(j921+n*(j922+n*(j923+n*(j924+n*(j925+n*j926)))))+
				m*(j930+n*(j931+n*(j932+n*(j933+n*(j934+n*j935))))+
					m*(j940+n*(j941+n*(j942+n*(j943+n*j944)))+
						m*(j950+n*(j951+n*(j952+n*j953))+
							m*(j960+n*(j961+n*j962)+
								m*(j970+n*j971+m*j980)))))))
	if y <= 1.6220210e-02 {
		return y * (j1 + y*(j2+y*(j3+y*(j4+y*(j5+y*(j6+y*(j7+y*(j8+y*j9))))))))
	}

	ja := ja00 + n*(ja01+n*(ja02+n*(ja03+n*(ja04+n*(ja05+n*(ja06+n*(ja07+n*(ja08+n*ja09)))))))) +
		m*(ja10+n*(ja11+n*(ja12+n*(ja13+n*(ja14+n*(ja15+n*(ja16+n*(ja17+n*ja18)))))))+
			m*(ja20+n*(ja21+n*(ja22+n*(ja23+n*(ja24+n*(ja25+n*(ja26+n*ja27))))))+
				m*(ja30+n*(ja31+n*(ja32+n*(ja33+n*(ja34+n*(ja35+n*ja36)))))+
					m*(ja40+n*(ja41+n*(ja42+n*(ja43+n*(ja44+n*ja45))))+
						m*(ja50+n*(ja51+n*(ja52+n*(ja53+n*ja54)))+
							m*(ja60+n*(ja61+n*(ja62+n*ja63))+
								m*(ja70+n*(ja71+n*ja72)+
									m*(ja80+n*ja81+m*ja90))))))))
	return y * (j1 + y*(j2+y*(j3+y*(j4+y*(j5+y*(j6+y*(j7+y*(j8+y*(j9+y*ja)))))))))
}

// fukushimaTMaclaurin holds the coefficients 1/(2k+1) of the Maclaurin
// series of T(t, h)/t in z = -h t².
var fukushimaTMaclaurin = [13]float64{
	1.0, 1.0 / 3.0, 1.0 / 5.0, 1.0 / 7.0, 1.0 / 9.0, 1.0 / 11.0, 1.0 / 13.0,
	1.0 / 15.0, 1.0 / 17.0, 1.0 / 19.0, 1.0 / 21.0, 1.0 / 23.0, 1.0 / 25.0,
}

func fukushimaTSeries(t, z float64, degree int) float64 {
	acc := fukushimaTMaclaurin[degree]
	for k := degree - 1; k >= 0; k-- {
		acc = fukushimaTMaclaurin[k] + z*acc
	}
	return t * acc
}

// fukushimaT computes T(t, h) = arctan(√h t)/√h, continued to h <= 0,
// [Fuku11c]. The distribution of z is very biased towards small values, so
// the series degrees are probed in increasing order.
func fukushimaT(t, h float64) float64 {
	z := -h * t * t
	absZ := math.Abs(z)
	switch {
	case absZ < 3.3306691e-16:
		return t
	case absZ < 2.3560805e-08:
		return fukushimaTSeries(t, z, 1)
	case absZ < 9.1939631e-06:
		return fukushimaTSeries(t, z, 2)
	case absZ < 1.7779240e-04:
		return fukushimaTSeries(t, z, 3)
	case absZ < 1.0407839e-03:
		return fukushimaTSeries(t, z, 4)
	case absZ < 3.3616998e-03:
		return fukushimaTSeries(t, z, 5)
	case absZ < 7.7408014e-03:
		return fukushimaTSeries(t, z, 6)
	case absZ < 1.4437181e-02:
		return fukushimaTSeries(t, z, 7)
	case absZ < 2.3407312e-02:
		return fukushimaTSeries(t, z, 8)
	case absZ < 3.4416203e-02:
		return fukushimaTSeries(t, z, 9)
	case z < 0.0:
		r := math.Sqrt(h)
		return math.Atan(r*t) / r
	case absZ < 4.7138547e-02:
		return fukushimaTSeries(t, z, 10)
	case absZ < 6.1227405e-02:
		return fukushimaTSeries(t, z, 11)
	case absZ < 7.6353468e-02:
		return fukushimaTSeries(t, z, 12)
	default:
		r := math.Sqrt(-h)
		return math.Atanh(r*t) / r
	}
}
