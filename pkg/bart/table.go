package bart

// toolTable lists every toolbox subcommand the marshaller knows about. Flags
// appear in the order they are emitted; positionals follow in command-line
// order.
var toolTable = []*Tool{
	{
		Name:    "avg",
		Summary: "Calculates (weighted) average along dimensions specified by bitmask.",
		Params: []Param{
			boolFlag("-w", "w", "weighted average"),
			scalar("bitmask"),
			input("input"),
			output("output"),
		},
	},
	{
		Name:    "bench",
		Summary: "Performs a series of micro-benchmarks.",
		Params: []Param{
			boolFlag("-T", "T", "varying number of threads"),
			boolFlag("-S", "S", "varying problem size"),
			valueFlag("-s", "s", "select benchmarks"),
			optOutput("output"),
		},
	},
	{
		Name:    "bin",
		Summary: "Binning",
		Params: []Param{
			valueFlag("-l", "l", "Bin according to labels: Specify cluster dimension"),
			boolFlag("-o", "o", "Reorder according to labels"),
			valueFlag("-R", "R", "Quadrature Binning: Number of respiratory labels"),
			valueFlag("-C", "C", "Quadrature Binning: Number of cardiac labels"),
			listFlag("-r", "r", "Respiration: Eigenvector index"),
			listFlag("-c", "c", "Cardiac motion: Eigenvector index"),
			valueFlag("-a", "a", "Quadrature Binning: Moving average"),
			valueFlag("-A", "A", "Quadrature Binning: Cardiac moving average window"),
			listFlag("-O", "O", "Quadrature Binning: Angle offset for resp and card."),
			valueFlag("-x", "x", "Output filtered cardiac EOFs"),
			boolFlag("-M", "M", "Amplitude binning"),
			input("label"),
			input("src"),
			output("dst"),
		},
	},
	{
		Name:    "bitmask",
		Summary: "Convert between a bitmask and set of dimensions.",
		Params: []Param{
			boolFlag("-b", "b", "dimensions from bitmask use with exactly one argument"),
			optVariadic("dims"),
		},
	},
	{
		Name:    "cabs",
		Summary: "Absolute value of array (|<input>|).",
		Params: []Param{
			input("input"),
			output("output"),
		},
	},
	{
		Name:    "caldir",
		Summary: "Estimates coil sensitivities from the k-space center using a direct method (McKenzie et al.).",
		Params: []Param{
			scalar("cal_size"),
			input("input"),
			output("output"),
		},
	},
	{
		Name:    "calmat",
		Summary: "Compute calibration matrix.",
		Params: []Param{
			listFlag("-k", "k", "kernel size"),
			listFlag("-K", "K", ""),
			listFlag("-r", "r", "Limits the size of the calibration region."),
			listFlag("-R", "R", ""),
			boolFlag("-C", "C", ""),
			input("kspace"),
			output("calibration_matrix"),
		},
	},
	{
		Name:    "carg",
		Summary: "Argument (phase angle).",
		Params: []Param{
			input("input"),
			output("output"),
		},
	},
	{
		Name:    "casorati",
		Summary: "Casorati matrix with kernel (kern1, ..., kernN) along dimensions (dim1, ..., dimN).",
		Params: []Param{
			tuple("dim", "kern"),
			input("input"),
			output("output"),
		},
	},
	{
		Name:    "cc",
		Summary: "Performs coil compression.",
		Params: []Param{
			valueFlag("-p", "p", "perform compression to N virtual channels"),
			boolFlag("-M", "M", "output compression matrix"),
			listFlag("-r", "r", "size of calibration region"),
			listFlag("-R", "R", "size of calibration region"),
			boolFlag("-A", "A", "use all data to compute coefficients"),
			boolFlag("-S", "S", "type: SVD"),
			boolFlag("-G", "G", "type: Geometric"),
			boolFlag("-E", "E", "type: ESPIRiT"),
			input("kspace"),
			output("output"),
		},
	},
	{
		Name:    "ccapply",
		Summary: "Apply coil compression forward/inverse operation.",
		Params: []Param{
			valueFlag("-p", "p", "perform compression to N virtual channels"),
			boolFlag("-u", "u", "apply inverse operation"),
			boolFlag("-t", "t", "don't apply FFT in readout"),
			boolFlag("-S", "S", "type: SVD"),
			boolFlag("-G", "G", "type: Geometric"),
			boolFlag("-E", "E", "type: ESPIRiT"),
			input("kspace"),
			input("cc_matrix"),
			output("proj_kspace"),
		},
	},
	{
		Name:    "cdf97",
		Summary: "Perform a wavelet (cdf97) transform.",
		Params: []Param{
			boolFlag("-i", "i", "inverse"),
			scalar("bitmask"),
			input("input"),
			output("output"),
		},
	},
	{
		Name:    "circshift",
		Summary: "Perform circular shift along {dim} by {shift} elements.",
		Params: []Param{
			scalar("dim"),
			scalar("shift"),
			input("input"),
			output("output"),
		},
	},
	{
		Name:    "conj",
		Summary: "Compute complex conjugate.",
		Params: []Param{
			input("input"),
			output("output"),
		},
	},
	{
		Name:    "conv",
		Summary: "Performs a convolution along selected dimensions.",
		Params: []Param{
			scalar("bitmask"),
			input("input"),
			input("kernel"),
			output("output"),
		},
	},
	{
		Name:    "conway",
		Summary: "Conway's game of life.",
		Params: []Param{
			boolFlag("-P", "P", "periodic boundary conditions"),
			valueFlag("-n", "n", "nr. of iterations"),
			input("input"),
			output("output"),
		},
	},
	{
		Name:    "copy",
		Summary: "Copy an array (to a given position in the output file - which then must exist).",
		Params: []Param{
			optTuple("dim", "pos"),
			input("input"),
			path("output"),
		},
	},
	{
		Name:    "cpyphs",
		Summary: "Copy phase from <input> to <output>.",
		Params: []Param{
			input("input"),
			output("output"),
		},
	},
	{
		Name:    "creal",
		Summary: "Real value.",
		Params: []Param{
			input("input"),
			output("output"),
		},
	},
	{
		Name:    "crop",
		Summary: "Extracts a sub-array corresponding to the central part of {size} along {dimension}",
		Params: []Param{
			scalar("dimension"),
			scalar("size"),
			input("input"),
			output("output"),
		},
	},
	{
		Name:    "delta",
		Summary: "Kronecker delta.",
		Params: []Param{
			scalar("dims"),
			scalar("flags"),
			scalar("size"),
			output("output"),
		},
	},
	{
		Name:    "ecalib",
		Summary: "Estimate coil sensitivities using ESPIRiT calibration. Optionally outputs the eigenvalue maps.",
		Params: []Param{
			valueFlag("-t", "t", "This determined the size of the null-space."),
			valueFlag("-c", "c", "Crop the sensitivities if the eigenvalue is smaller than crop_value."),
			listFlag("-k", "k", "kernel size"),
			listFlag("-K", "K", ""),
			listFlag("-r", "r", "Limits the size of the calibration region."),
			listFlag("-R", "R", ""),
			valueFlag("-m", "m", "Number of maps to compute."),
			boolFlag("-S", "S", "create maps with smooth transitions (Soft-SENSE)."),
			boolFlag("-W", "W", "soft-weighting of the singular vectors."),
			boolFlag("-I", "I", "intensity correction"),
			boolFlag("-1", "1", "perform only first part of the calibration"),
			boolFlag("-P", "P", "Do not rotate the phase with respect to the first principal component"),
			boolFlag("-O", "O", ""),
			valueFlag("--orthiter", "orthiter", ""),
			valueFlag("-b", "b", ""),
			boolFlag("-V", "V", ""),
			boolFlag("-C", "C", ""),
			boolFlag("-g", "g", ""),
			valueFlag("-p", "p", ""),
			valueFlag("-n", "n", ""),
			valueFlag("-v", "v", "Variance of noise in data."),
			boolFlag("-a", "a", "Automatically pick thresholds."),
			valueFlag("-d", "d", "Debug level"),
			input("kspace"),
			output("sensitivities"),
			optOutput("ev_maps"),
		},
	},
	{
		Name:    "ecaltwo",
		Summary: "Second part of ESPIRiT calibration. Optionally outputs the eigenvalue maps.",
		Params: []Param{
			valueFlag("-c", "c", "Crop the sensitivities if the eigenvalue is smaller than crop_value."),
			valueFlag("-m", "m", "Number of maps to compute."),
			boolFlag("-S", "S", "Create maps with smooth transitions (Soft-SENSE)."),
			boolFlag("-O", "O", ""),
			boolFlag("-g", "g", ""),
			scalar("x"),
			scalar("y"),
			scalar("z"),
			input("input"),
			output("sensitivities"),
			optOutput("ev_maps"),
		},
	},
	{
		Name:    "epg",
		Summary: "Simulate MR pulse sequence based on Extended Phase Graphs (EPG)",
		Params: []Param{
			boolFlag("-C", "C", "CPMG"),
			boolFlag("-M", "M", "fmSSFP"),
			boolFlag("-H", "H", "Hyperecho"),
			boolFlag("-F", "F", "FLASH"),
			boolFlag("-S", "S", "Spinecho"),
			boolFlag("-B", "B", "bSSFP"),
			valueFlag("-1", "1", "T1 [units of time]"),
			valueFlag("-2", "2", "T2 [units of time]"),
			valueFlag("-b", "b", "relative B1 [unitless]"),
			valueFlag("-o", "o", "off-resonance [units of inverse time]"),
			valueFlag("-r", "r", "repetition time [units of time]"),
			valueFlag("-e", "e", "echo time [units of time]"),
			valueFlag("-f", "f", "flip angle [degrees]"),
			valueFlag("-s", "s", "spoiling (0: ideal 1: conventional RF 2: random RF)"),
			valueFlag("-n", "n", "number of pulses"),
			valueFlag("-u", "u", "unknowns as bitmask (0: T1 1: T2 2: B1 3: off-res)"),
			valueFlag("-v", "v", "verbosity level"),
			output("signal"),
			optOutput("states"),
			optOutput("derivatives"),
			optOutput("state_derivatives"),
		},
	},
	{
		Name:    "estdelay",
		Summary: "Estimate gradient delays from radial data.",
		Params: []Param{
			boolFlag("-R", "R", "RING method"),
			valueFlag("-p", "p", "[RING] Padding"),
			valueFlag("-n", "n", "[RING] Number of intersecting spokes"),
			valueFlag("-r", "r", "[RING] Central region size"),
			input("trajectory"),
			input("data"),
			optOutput("qf"),
		},
	},
	{
		Name:    "estdims",
		Summary: "Estimate image dimension from non-Cartesian trajectory.",
		Params: []Param{
			input("traj"),
		},
	},
	{
		Name:    "estshift",
		Summary: "Estimate sub-pixel shift.",
		Params: []Param{
			scalar("flags"),
			input("arg1"),
			input("arg2"),
		},
	},
	{
		Name:    "estvar",
		Summary: "Estimate the noise variance assuming white Gaussian noise.",
		Params: []Param{
			listFlag("-k", "k", "kernel size"),
			listFlag("-K", "K", ""),
			listFlag("-r", "r", "Limits the size of the calibration region."),
			listFlag("-R", "R", ""),
			input("kspace"),
		},
	},
	{
		Name:    "extract",
		Summary: "Extracts a sub-array along dims from index start to (not including) end.",
		Params: []Param{
			tuple("dim", "start", "end"),
			input("input"),
			output("output"),
		},
	},
	{
		Name:    "fakeksp",
		Summary: "Recreate k-space from image and sensitivities.",
		Params: []Param{
			boolFlag("-r", "r", "replace measured samples with original values"),
			input("image"),
			input("kspace"),
			input("sens"),
			output("output"),
		},
	},
	{
		Name:    "fft",
		Summary: "Performs a fast Fourier transform (FFT) along selected dimensions.",
		Params: []Param{
			boolFlag("-u", "u", "unitary"),
			boolFlag("-i", "i", "inverse"),
			boolFlag("-n", "n", "un-centered"),
			scalar("bitmask"),
			input("input"),
			output("output"),
		},
	},
	{
		Name:    "fftmod",
		Summary: "Apply 1 -1 modulation along dimensions selected by the {bitmask}.",
		Params: []Param{
			boolFlag("-b", "b", "deprecated"),
			boolFlag("-i", "i", "inverse"),
			scalar("bitmask"),
			input("input"),
			output("output"),
		},
	},
	{
		Name:    "fftrot",
		Summary: "Performs a rotation using Fourier transform (FFT) along selected dimensions.",
		Params: []Param{
			scalar("dim1"),
			scalar("dim2"),
			scalar("theta"),
			input("input"),
			output("output"),
		},
	},
	{
		Name:    "fftshift",
		Summary: "Apply fftshift along dimensions selected by the {bitmask}.",
		Params: []Param{
			boolFlag("-b", "b", "apply ifftshift"),
			scalar("bitmask"),
			input("input"),
			output("output"),
		},
	},
	{
		Name:    "filter",
		Summary: "Apply filter.",
		Params: []Param{
			valueFlag("-m", "m", "median filter along dimension dim"),
			valueFlag("-l", "l", "length of filter"),
			boolFlag("-G", "G", "geometric median"),
			valueFlag("-a", "a", "Moving average filter along dimension dim"),
			input("input"),
			output("output"),
		},
	},
	{
		Name:    "flatten",
		Summary: "Flatten array to one dimension.",
		Params: []Param{
			input("input"),
			output("output"),
		},
	},
	{
		Name:    "flip",
		Summary: "Flip (reverse) dimensions specified by the {bitmask}.",
		Params: []Param{
			scalar("bitmask"),
			input("input"),
			output("output"),
		},
	},
	{
		Name:    "fmac",
		Summary: "Multiply <input1> and <input2> and accumulate in <output>.",
		Params: []Param{
			boolFlag("-A", "A", "add to existing output (instead of overwriting)"),
			boolFlag("-C", "C", "conjugate input2"),
			valueFlag("-s", "s", "squash dimensions selected by bitmask b"),
			input("input1"),
			optInput("input2"),
			output("output"),
		},
	},
	{
		Name:    "fovshift",
		Summary: "Shifts FOV.",
		Params: []Param{
			arrayFlag("-t", "t", "k-space trajectory"),
			listFlag("-s", "s", "FOV shift"),
			input("input"),
			output("output"),
		},
	},
	{
		Name:    "homodyne",
		Summary: "Perform homodyne reconstruction along dimension dim.",
		Params: []Param{
			valueFlag("-r", "r", "Offset of ramp filter between 0 and 1. alpha=0 is a full ramp alpha=1 is a horizontal line"),
			boolFlag("-I", "I", "Input is in image domain"),
			boolFlag("-C", "C", "Clear unacquired portion of kspace"),
			arrayFlag("-P", "P", "Use <phase_ref> as phase reference"),
			boolFlag("-n", "n", "use uncentered ffts"),
			scalar("dim"),
			scalar("fraction"),
			input("input"),
			output("output"),
		},
	},
	{
		Name:    "ictv",
		Summary: "Infimal convolution of total variation along dims specified by flags.",
		Params: []Param{
			valueFlag("-i", "i", "max. iterations"),
			valueFlag("-u", "u", "rho in ADMM"),
			scalar("lambda1"),
			scalar("lambda2"),
			scalar("flags"),
			input("input"),
			output("output"),
		},
	},
	{
		Name:    "index",
		Summary: "Create an array counting from 0 to {size-1} in dimensions {dim}.",
		Params: []Param{
			scalar("dim"),
			scalar("size"),
			output("output"),
		},
	},
	{
		Name:    "invert",
		Summary: "Invert array (1 / <input>). The output is set to zero in case of divide by zero.",
		Params: []Param{
			input("input"),
			output("output"),
		},
	},
	{
		Name:    "itsense",
		Summary: "A simplified implementation of iterative sense reconstruction with l2-regularization.",
		Params: []Param{
			scalar("alpha"),
			input("sensitivities"),
			input("kspace"),
			input("pattern"),
			output("output"),
		},
	},
	{
		Name:    "join",
		Summary: "Join input files along {dimensions}.",
		Params: []Param{
			boolFlag("-a", "a", "append - only works for cfl files!"),
			scalar("dimension"),
			inputs("inputs"),
			output("output"),
		},
	},
	{
		Name:    "looklocker",
		Summary: "Compute T1 map from M_0, M_ss, and R_1*.",
		Params: []Param{
			valueFlag("-t", "t", "Pixels with M0 values smaller than threshold are set to zero."),
			valueFlag("-D", "D", "Time between the middle of inversion pulse and the first excitation."),
			input("input"),
			output("output"),
		},
	},
	{
		Name:    "lrmatrix",
		Summary: "Perform (multi-scale) low rank matrix completion",
		Params: []Param{
			boolFlag("-d", "d", "perform decomposition instead ie fully sampled"),
			valueFlag("-i", "i", "maximum iterations."),
			valueFlag("-m", "m", "which dimensions are reshaped to matrix columns."),
			valueFlag("-f", "f", "which dimensions to perform multi-scale partition."),
			valueFlag("-j", "j", "block size scaling from one scale to the next one."),
			valueFlag("-k", "k", "smallest block size"),
			boolFlag("-N", "N", "add noise scale to account for Gaussian noise."),
			boolFlag("-s", "s", "perform low rank + sparse matrix completion."),
			valueFlag("-l", "l", "perform locally low rank soft thresholding with specified block size."),
			boolFlag("-u", "u", ""),
			boolFlag("-v", "v", ""),
			boolFlag("-H", "H", "hogwild"),
			valueFlag("-p", "p", "rho"),
			boolFlag("-n", "n", "no randshift"),
			boolFlag("-g", "g", "use GPU"),
			valueFlag("-o", "o", "export the low-rank components to this path"),
			input("input"),
			output("output"),
		},
	},
	{
		Name:    "mandelbrot",
		Summary: "Compute mandelbrot set.",
		Params: []Param{
			valueFlag("-s", "s", "image size"),
			valueFlag("-n", "n", "nr. of iterations"),
			valueFlag("-t", "t", "threshold for divergence"),
			valueFlag("-z", "z", "zoom"),
			valueFlag("-r", "r", "offset real"),
			valueFlag("-i", "i", "offset imag"),
			output("output"),
		},
	},
	{
		Name:    "measure",
		Summary: "Measure image quality metrics of input against reference.",
		Params: []Param{
			boolFlag("--mse", "mse", "mse"),
			boolFlag("--mse-mag", "mse_mag", "mse of rss (over coil dim)"),
			boolFlag("--ssim", "ssim", "ssim of rss (over coil dim) and mean over other dims"),
			boolFlag("--psnr", "psnr", "psnr of rss (over coil dim) and mean over other dims"),
			input("reference"),
			input("input"),
			optOutput("output"),
		},
	},
	{
		Name:    "mip",
		Summary: "Maximum (minimum) intensity projection (MIP) along dimensions specified by bitmask.",
		Params: []Param{
			boolFlag("-m", "m", "minimum"),
			boolFlag("-a", "a", "do absolute value first"),
			scalar("bitmask"),
			input("input"),
			output("output"),
		},
	},
	{
		Name:    "mnist",
		Summary: "Trains or applies a MNIST network.",
		Params: []Param{
			boolFlag("--apply", "apply", "apply nnet"),
			boolFlag("--train", "train", "trains network"),
			boolFlag("--gpu", "gpu", "run on gpu"),
			input("input"),
			path("weights"),
			path("ref_output"),
		},
	},
	{
		Name:    "moba",
		Summary: "Model-based nonlinear inverse reconstruction",
		Params: []Param{
			valueFlag("-r", "r", "generalized regularization options (-rh for help)"),
			boolFlag("-L", "L", "T1 mapping using model-based look-locker"),
			boolFlag("-P", "P", "T1 mapping using reparameterized (M0 R1 alpha) model-based look-locker (TR required!)"),
			boolFlag("-F", "F", "T2 mapping using model-based Fast Spin Echo"),
			boolFlag("-G", "G", "T2* mapping using model-based multiple gradient echo"),
			boolFlag("--bloch", "bloch", "Bloch model-based reconstruction"),
			valueFlag("-m", "m", "Select the MGRE model from enum  WF = 0 WFR2S WF2R2S R2S PHASEDIFF  [default: WFR2S]"),
			valueFlag("-l", "l", "toggle l1-wavelet or l2 regularization."),
			valueFlag("-i", "i", "Number of Newton steps"),
			valueFlag("--reduction", "reduction", "reduction factor"),
			valueFlag("-T", "T", "damping on temporal frames"),
			valueFlag("-j", "j", "Minimum regularization parameter"),
			valueFlag("-u", "u", "ADMM rho [default: 0.01]"),
			valueFlag("-C", "C", "inner iterations"),
			valueFlag("-s", "s", "step size"),
			valueFlag("-B", "B", "lower bound for relaxation"),
			listFlag("-b", "b", "B0 field: spatial smooth level; scaling [default: 222.; 1.]"),
			valueFlag("-d", "d", "Debug level"),
			boolFlag("-N", "N", "normalize"),
			valueFlag("-f", "f", ""),
			arrayFlag("-p", "p", ""),
			boolFlag("-J", "J", "Stack frames for joint recon"),
			boolFlag("-M", "M", "Simultaneous Multi-Slice reconstruction"),
			boolFlag("-O", "O", "Output original maps from reconstruction without post processing"),
			boolFlag("-g", "g", "use gpu"),
			valueFlag("--multi-gpu", "multi_gpu", "number of gpus to use"),
			arrayFlag("-I", "I", "File for initialization"),
			arrayFlag("-t", "t", "K-space trajectory"),
			valueFlag("-o", "o", "Oversampling factor for gridding [default: 1.]"),
			listFlag("--img_dims", "img_dims", "dimensions"),
			boolFlag("-k", "k", "k-space edge filter for non-Cartesian trajectories"),
			boolFlag("--kfilter-1", "kfilter_1", "k-space edge filter 1"),
			boolFlag("--kfilter-2", "kfilter_2", "k-space edge filter 2"),
			valueFlag("-e", "e", "strength for k-space edge filter [default: 2e-3]"),
			boolFlag("-n", "n", "disable normalization of parameter maps for thresholding"),
			boolFlag("--no_alpha_min_exp_decay", "no_alpha_min_exp_decay", "Use hard minimum instead of exponential decay towards alpha_min"),
			valueFlag("--sobolev_a", "sobolev_a", "a in 1 + a * \\Laplace^-b/2"),
			valueFlag("--sobolev_b", "sobolev_b", "b in 1 + a * \\Laplace^-b/2"),
			boolFlag("--fat_spec_0", "fat_spec_0", "select fat spectrum from ISMRM fat-water tool"),
			valueFlag("--scale_data", "scale_data", "scaling factor for data"),
			valueFlag("--scale_psf", "scale_psf", "scaling factor for PSF"),
			boolFlag("--normalize_scaling", "normalize_scaling", "normalize scaling by data / PSF"),
			valueFlag("--seq", "seq", "configure sequence parameters"),
			valueFlag("--sim", "sim", "configure simulation parameters"),
			valueFlag("--other", "other", "configure other parameters"),
			input("kspace"),
			input("ti_te"),
			output("output"),
			optOutput("sensitivities"),
		},
	},
	{
		Name:    "mobafit",
		Summary: "Pixel-wise fitting of physical signal models.",
		Params: []Param{
			boolFlag("-T", "T", "TSE"),
			boolFlag("-G", "G", "MGRE"),
			boolFlag("-D", "D", "diffusion"),
			valueFlag("-m", "m", "Select the MGRE model from enum  WF = 0 WFR2S WF2R2S R2S PHASEDIFF  [default: WFR2S]"),
			valueFlag("-i", "i", "Number of IRGNM steps"),
			listFlag("-p", "p", "patch size"),
			boolFlag("-g", "g", "use gpu"),
			input("enc"),
			input("echo_images"),
			optOutput("coefficients"),
		},
	},
	{
		Name:    "morphop",
		Summary: "Perform morphological operators on binary data with odd mask sizes.",
		Params: []Param{
			boolFlag("-e", "e", "EROSION (default)"),
			boolFlag("-d", "d", "DILATION"),
			boolFlag("-o", "o", "OPENING"),
			boolFlag("-c", "c", "CLOSING"),
			scalar("mask_size"),
			input("input"),
			optOutput("output"),
		},
	},
	{
		Name:    "multicfl",
		Summary: "Combine/Split multiple cfl files to one multi-cfl file.",
		Params: []Param{
			boolFlag("-s", "s", "separate"),
			paths("cfl"),
		},
	},
	{
		Name:    "nlinv",
		Summary: "Jointly estimate image and sensitivities with nonlinear inversion using {iter} iteration steps.",
		Params: []Param{
			valueFlag("-i", "i", "Number of Newton steps"),
			valueFlag("-R", "R", "reduction factor"),
			valueFlag("-M", "M", "minimum for regularization"),
			valueFlag("-d", "d", "Debug level"),
			boolFlag("-c", "c", "Real-value constraint"),
			boolFlag("-N", "N", "Do not normalize image with coil sensitivities"),
			valueFlag("-m", "m", "Number of ENLIVE maps to use in reconstruction"),
			boolFlag("-U", "U", "Do not combine ENLIVE maps in output"),
			valueFlag("-f", "f", "restrict FOV"),
			arrayFlag("-p", "p", "pattern / transfer function"),
			arrayFlag("-t", "t", "kspace trajectory"),
			arrayFlag("-I", "I", "File for initialization"),
			boolFlag("-g", "g", "use gpu"),
			boolFlag("-S", "S", "Re-scale image after reconstruction"),
			valueFlag("-s", "s", "dimensions with constant sensitivities"),
			valueFlag("-a", "a", "a in 1 + a * \\Laplace^-b/2"),
			valueFlag("-b", "b", "b in 1 + a * \\Laplace^-b/2"),
			boolFlag("-P", "P", "supplied psf is different for each coil"),
			boolFlag("-n", "n", "non-Cartesian"),
			valueFlag("-w", "w", "inverse scaling of the data"),
			boolFlag("--lowmem", "lowmem", "Use low-mem mode of the nuFFT"),
			input("kspace"),
			output("output"),
			optOutput("sensitivities"),
		},
	},
	{
		Name:    "nnet",
		Summary: "Trains or applies a neural network.",
		Params: []Param{
			boolFlag("--apply", "apply", "apply nnet"),
			boolFlag("--eval", "eval", "evaluate nnet"),
			boolFlag("--train", "train", "trains network"),
			boolFlag("--gpu", "gpu", "run on gpu"),
			valueFlag("--batch-size", "batch_size", "size of mini batches"),
			arrayFlag("--load", "load", "load weights for continuing training"),
			valueFlag("--network", "network", "select neural network"),
			valueFlag("--unet-segm", "unet_segm", "configure U-Net for segmentation"),
			valueFlag("--train-loss", "train_loss", "configure the training loss"),
			valueFlag("--valid-loss", "valid_loss", "configure the validation loss"),
			valueFlag("--valid-data", "valid_data", "provide validation data"),
			valueFlag("--train-algo", "train_algo", "configure general training parmeters"),
			valueFlag("--adam", "adam", "configure Adam"),
			boolFlag("--load-memory", "load_memory", "load files into memory"),
			valueFlag("--export-graph", "export_graph", "export graph for visualization"),
			input("input"),
			path("weights"),
			path("ref_output"),
		},
	},
	{
		Name:    "noise",
		Summary: "Add noise with selected variance to input.",
		Params: []Param{
			valueFlag("-s", "s", "random seed initialization"),
			valueFlag("-S", "S", ""),
			boolFlag("-r", "r", "real-valued input"),
			valueFlag("-n", "n", "DEFAULT: 1.0"),
			input("input"),
			output("output"),
		},
	},
	{
		Name:    "normalize",
		Summary: "Normalize along selected dimensions.",
		Params: []Param{
			boolFlag("-b", "b", "l1"),
			scalar("flags"),
			input("input"),
			output("output"),
		},
	},
	{
		Name:    "nrmse",
		Summary: "Output normalized root mean square error (NRMSE), i.e. norm(input - ref) / norm(ref)",
		Params: []Param{
			valueFlag("-t", "t", "compare to eps"),
			boolFlag("-s", "s", "automatic (complex) scaling"),
			input("reference"),
			input("input"),
		},
	},
	{
		Name:    "nufft",
		Summary: "Perform non-uniform Fast Fourier Transform.",
		Params: []Param{
			boolFlag("-a", "a", "adjoint"),
			boolFlag("-i", "i", "inverse"),
			listFlag("-d", "d", "dimensions"),
			listFlag("-D", "D", ""),
			boolFlag("-t", "t", "Toeplitz embedding for inverse NUFFT"),
			boolFlag("-r", "r", "turn-off Toeplitz embedding for inverse NUFFT"),
			boolFlag("-c", "c", "Preconditioning for inverse NUFFT"),
			valueFlag("-l", "l", "l2 regularization"),
			valueFlag("-m", "m", ""),
			boolFlag("-P", "P", "periodic k-space"),
			boolFlag("-s", "s", "DFT"),
			boolFlag("-g", "g", "GPU (only inverse)"),
			boolFlag("-1", "1", "use/return oversampled grid"),
			boolFlag("--lowmem", "lowmem", "Use low-mem mode of the nuFFT"),
			input("traj"),
			input("input"),
			output("output"),
		},
	},
	{
		Name:    "onehotenc",
		Summary: "Transforms class labels to one-hot-encoded classes",
		Params: []Param{
			boolFlag("-r", "r", "get class label by maximum entry"),
			valueFlag("-i", "i", "select dimension"),
			input("input"),
			output("output"),
		},
	},
	{
		Name:    "ones",
		Summary: "Create an array filled with ones with {dims} dimensions of size {dim1} to {dimn}.",
		Params: []Param{
			scalar("dims"),
			variadic("sizes"),
			output("output"),
		},
	},
	{
		Name:    "pattern",
		Summary: "Compute sampling pattern from kspace",
		Params: []Param{
			valueFlag("-s", "s", "Squash dimensions selected by bitmask"),
			input("kspace"),
			output("pattern"),
		},
	},
	{
		Name:    "phantom",
		Summary: "Image and k-space domain phantoms.",
		Params: []Param{
			valueFlag("-s", "s", "nc sensitivities"),
			valueFlag("-S", "S", "Output nc sensitivities"),
			boolFlag("-k", "k", "k-space"),
			arrayFlag("-t", "t", "trajectory"),
			boolFlag("-c", "c", ""),
			boolFlag("-a", "a", ""),
			boolFlag("-m", "m", ""),
			boolFlag("-G", "G", "geometric object phantom"),
			boolFlag("-T", "T", "tubes phantom"),
			boolFlag("--NIST", "NIST", "NIST phantom (T2 sphere)"),
			boolFlag("--SONAR", "SONAR", "Diagnostic Sonar phantom"),
			valueFlag("-N", "N", "Random tubes phantom and number"),
			boolFlag("-B", "B", "BART logo"),
			valueFlag("-x", "x", "dimensions in y and z"),
			valueFlag("-g", "g", "select geometry for object phantom"),
			boolFlag("-3", "3", "3D"),
			boolFlag("-b", "b", "basis functions for geometry"),
			valueFlag("-r", "r", "random seed initialization"),
			valueFlag("--rotation-angle", "rotation_angle", "Angle of Rotation"),
			valueFlag("--rotation-steps", "rotation_steps", "Number of rotation steps"),
			output("output"),
		},
	},
	{
		Name:    "pics",
		Summary: "Parallel-imaging compressed-sensing reconstruction.",
		Params: []Param{
			valueFlag("-l", "l", "toggle l1-wavelet or l2 regularization."),
			valueFlag("-r", "r", "regularization parameter"),
			valueFlag("-R", "R", "generalized regularization options (-Rh for help)"),
			boolFlag("-c", "c", "real-value constraint"),
			valueFlag("-s", "s", "iteration stepsize"),
			valueFlag("-i", "i", "max. number of iterations"),
			arrayFlag("-t", "t", "k-space trajectory"),
			boolFlag("-n", "n", "disable random wavelet cycle spinning"),
			boolFlag("-N", "N", "do fully overlapping LLR blocks"),
			boolFlag("-g", "g", "use GPU"),
			valueFlag("-G", "G", "use GPU device gpun"),
			arrayFlag("-p", "p", "pattern or weights"),
			boolFlag("-I", "I", "select IST"),
			valueFlag("-b", "b", "Lowrank block size"),
			boolFlag("-e", "e", "Scale stepsize based on max. eigenvalue"),
			boolFlag("-H", "H", "hogwild"),
			boolFlag("-D", "D", "ADMM dynamic step size"),
			boolFlag("-F", "F", "fast"),
			boolFlag("-J", "J", "ADMM residual balancing"),
			arrayFlag("-T", "T", "truth file"),
			arrayFlag("-W", "W", "Warm start with <img>"),
			valueFlag("-d", "d", "Debug level"),
			valueFlag("-O", "O", "reweighting"),
			valueFlag("-o", "o", "reweighting"),
			valueFlag("-u", "u", "ADMM rho"),
			valueFlag("-C", "C", "ADMM max. CG iterations"),
			valueFlag("-q", "q", "cclambda"),
			valueFlag("-f", "f", "restrict FOV"),
			boolFlag("-m", "m", "select ADMM"),
			valueFlag("-w", "w", "inverse scaling of the data"),
			boolFlag("-S", "S", "re-scale the image after reconstruction"),
			valueFlag("-L", "L", "batch-mode"),
			boolFlag("-K", "K", "randshift for NUFFT"),
			arrayFlag("-B", "B", "temporal (or other) basis"),
			valueFlag("-P", "P", "Basis Pursuit formulation || y- Ax ||_2 <= eps"),
			boolFlag("-a", "a", "select Primal Dual"),
			boolFlag("-M", "M", "Simultaneous Multi-Slice reconstruction"),
			boolFlag("--lowmem", "lowmem", "Use low-mem mode of the nuFFT"),
			arrayFlag("--psf_import", "psf_import", "Import PSF from file"),
			valueFlag("--wavelet", "wavelet", "wavelet type (haar dau2 cdf44)"),
			valueFlag("--psf_export", "psf_export", "export PSF to this path"),
			input("kspace"),
			input("sensitivities"),
			output("output"),
		},
	},
	{
		Name:    "pocsense",
		Summary: "Perform POCSENSE reconstruction.",
		Params: []Param{
			valueFlag("-i", "i", "max. number of iterations"),
			valueFlag("-r", "r", "regularization parameter"),
			valueFlag("-l", "l", "toggle l1-wavelet or l2 regularization"),
			boolFlag("-g", "g", ""),
			valueFlag("-o", "o", ""),
			valueFlag("-m", "m", ""),
			input("kspace"),
			input("sensitivities"),
			output("output"),
		},
	},
	{
		Name:    "poisson",
		Summary: "Computes Poisson-disc sampling pattern.",
		Params: []Param{
			valueFlag("-Y", "Y", "size dimension 1"),
			valueFlag("-Z", "Z", "size dimension 2"),
			valueFlag("-y", "y", "acceleration dim 1"),
			valueFlag("-z", "z", "acceleration dim 2"),
			valueFlag("-C", "C", "size of calibration region"),
			boolFlag("-v", "v", "variable density"),
			valueFlag("-V", "V", "variable density"),
			boolFlag("-e", "e", "elliptical scanning"),
			valueFlag("-D", "D", ""),
			valueFlag("-T", "T", ""),
			boolFlag("-m", "m", ""),
			valueFlag("-R", "R", ""),
			valueFlag("-s", "s", "random seed"),
			output("output"),
		},
	},
	{
		Name:    "pol2mask",
		Summary: "Compute masks from polygons.",
		Params: []Param{
			valueFlag("-X", "X", "size dimension 0"),
			valueFlag("-Y", "Y", "size dimension 1"),
			input("poly"),
			output("output"),
		},
	},
	{
		Name:    "poly",
		Summary: "Evaluate polynomial p(x) = a_1 + a_2 x + a_3 x^2 ...",
		Params: []Param{
			scalar("L"),
			scalar("N"),
			variadic("a"),
			output("output"),
		},
	},
	{
		Name:    "reconet",
		Summary: "Trains or appplies a neural network for reconstruction.",
		Params: []Param{
			boolFlag("--train", "train", "train reconet"),
			boolFlag("--eval", "eval", "evaluate reconet"),
			boolFlag("--apply", "apply", "apply reconet"),
			boolFlag("--gpu", "gpu", "run on gpu"),
			arrayFlag("--load", "load", "load weights for continuing training"),
			valueFlag("--batch-size", "batch_size", "size of mini batches"),
			valueFlag("--iterations", "iterations", "number of unrolled iterations"),
			boolFlag("--normalize", "normalize", "normalize data with maximum magnitude of adjoint reconstruction"),
			valueFlag("--network", "network", "select neural network"),
			valueFlag("--resnet-block", "resnet_block", "configure residual block"),
			valueFlag("--varnet-block", "varnet_block", "configure variational block"),
			valueFlag("--unet", "unet", "configure U-Net block"),
			valueFlag("--data-consistency", "data_consistency", "configure data-consistency method"),
			valueFlag("--initial-reco", "initial_reco", "configure initialization"),
			boolFlag("--shared-weights", "shared_weights", "share weights across iterations"),
			boolFlag("--no-shared-weights", "no_shared_weights", "share weights across iterations"),
			boolFlag("--shared-lambda", "shared_lambda", "share lambda across iterations"),
			boolFlag("--no-shared-lambda", "no_shared_lambda", "share lambda across iterations"),
			boolFlag("--rss-norm", "rss_norm", "scale output image to rss normalization"),
			arrayFlag("--trajectory", "trajectory", "trajectory"),
			arrayFlag("--pattern", "pattern", "sampling pattern / psf in kspace"),
			valueFlag("--adjoint", "adjoint", "validation data adjoint (load or export"),
			valueFlag("--psf", "psf", "psf (load or export"),
			boolFlag("--export", "export", "export psf and adjoint reconstruction"),
			arrayFlag("--mask", "mask", "mask for computation of loss"),
			valueFlag("--valid-data", "valid_data", "provide validation data"),
			valueFlag("--train-loss", "train_loss", "configure the training loss"),
			valueFlag("--valid-loss", "valid_loss", "configure the validation loss"),
			valueFlag("--train-algo", "train_algo", "configure general training parmeters"),
			valueFlag("--adam", "adam", "configure Adam"),
			valueFlag("--iPALM", "iPALM", "configure iPALM"),
			boolFlag("--load-memory", "load_memory", "copy training data into memory"),
			boolFlag("--lowmem", "lowmem", "reduce memory usage by checkpointing"),
			boolFlag("--test", "test", "very small network for tests"),
			valueFlag("--export-graph", "export_graph", "export graph for visualization"),
			arrayFlag("-B", "B", "temporal (or other) basis"),
			input("kspace"),
			input("sensitivities"),
			path("weights"),
			path("ref_out"),
		},
	},
	{
		Name:    "repmat",
		Summary: "Repeat input array multiple times along a certain dimension.",
		Params: []Param{
			scalar("dimension"),
			scalar("repetitions"),
			input("input"),
			output("output"),
		},
	},
	{
		Name:    "reshape",
		Summary: "Reshape selected dimensions.",
		Params: []Param{
			scalar("flags"),
			variadic("sizes"),
			input("input"),
			output("output"),
		},
	},
	{
		Name:    "resize",
		Summary: "Resizes an array along dimensions to sizes by truncating or zero-padding.",
		Params: []Param{
			boolFlag("-c", "c", "center"),
			tuple("dim", "size"),
			input("input"),
			output("output"),
		},
	},
	{
		Name:    "rmfreq",
		Summary: "Remove angle-dependent frequency",
		Params: []Param{
			valueFlag("-N", "N", "Number of harmonics [Default: 5]"),
			valueFlag("-M", "M", "Contrast modulation file"),
			input("traj"),
			input("k"),
			output("k_cor"),
		},
	},
	{
		Name:    "rof",
		Summary: "Perform total variation denoising along dims <flags>.",
		Params: []Param{
			scalar("lambda"),
			scalar("flags"),
			input("input"),
			output("output"),
		},
	},
	{
		Name:    "roistat",
		Summary: "Compute ROI statistics.",
		Params: []Param{
			boolFlag("-b", "b", "Bessel's correction i.e. 1 / (n - 1)"),
			boolFlag("-C", "C", "voxel count"),
			boolFlag("-S", "S", "sum"),
			boolFlag("-M", "M", "mean"),
			boolFlag("-D", "D", "standard deviation"),
			boolFlag("-E", "E", "energy"),
			boolFlag("-V", "V", "variance"),
			input("roi"),
			input("input"),
			optOutput("output"),
		},
	},
	{
		Name:    "rss",
		Summary: "Calculates root of sum of squares along selected dimensions.",
		Params: []Param{
			scalar("bitmask"),
			input("input"),
			output("output"),
		},
	},
	{
		Name:    "rtnlinv",
		Summary: "Jointly estimate a time-series of images and sensitivities with nonlinear inversion using {iter} iteration steps.",
		Params: []Param{
			valueFlag("-i", "i", "Number of Newton steps"),
			valueFlag("-R", "R", "reduction factor"),
			valueFlag("-M", "M", "minimum for regularization"),
			valueFlag("-d", "d", "Debug level"),
			boolFlag("-c", "c", "Real-value constraint"),
			boolFlag("-N", "N", "Do not normalize image with coil sensitivities"),
			valueFlag("-m", "m", "Number of ENLIVE maps to use in reconstruction"),
			boolFlag("-U", "U", "Do not combine ENLIVE maps in output"),
			valueFlag("-f", "f", "restrict FOV"),
			arrayFlag("-p", "p", "pattern / transfer function"),
			arrayFlag("-t", "t", "kspace trajectory"),
			arrayFlag("-I", "I", "File for initialization"),
			arrayFlag("-C", "C", "File for initialization with image space sensitivities"),
			boolFlag("-g", "g", "use gpu"),
			boolFlag("-S", "S", "Re-scale image after reconstruction"),
			valueFlag("-a", "a", "a in 1 + a * \\Laplace^-b/2"),
			valueFlag("-b", "b", "b in 1 + a * \\Laplace^-b/2"),
			valueFlag("-T", "T", "temporal damping [default: 0.9]"),
			valueFlag("-w", "w", "inverse scaling of the data"),
			listFlag("-x", "x", "Explicitly specify image dimensions"),
			boolFlag("-A", "A", "Alternative scaling"),
			boolFlag("-s", "s", "Simultaneous Multi-Slice reconstruction"),
			input("kspace"),
			output("output"),
			optOutput("sensitivities"),
		},
	},
	{
		Name:    "sake",
		Summary: "Use SAKE algorithm to recover a full k-space from undersampled data using low-rank matrix completion.",
		Params: []Param{
			valueFlag("-i", "i", "number of iterations"),
			valueFlag("-s", "s", "rel. size of the signal subspace"),
			valueFlag("-o", "o", ""),
			input("kspace"),
			output("output"),
		},
	},
	{
		Name:    "saxpy",
		Summary: "Multiply input1 with scale factor and add input2.",
		Params: []Param{
			scalar("scale"),
			input("input1"),
			input("input2"),
			output("output"),
		},
	},
	{
		Name:    "scale",
		Summary: "Scale array by {factor}. The scale factor can be a complex number.",
		Params: []Param{
			scalar("factor"),
			input("input"),
			output("output"),
		},
	},
	{
		Name:    "sdot",
		Summary: "Compute dot product along selected dimensions.",
		Params: []Param{
			input("input1"),
			input("input2"),
		},
	},
	{
		Name:    "show",
		Summary: "Outputs values or meta data.",
		Params: []Param{
			boolFlag("-m", "m", "show meta data"),
			valueFlag("-d", "d", "show size of dimension"),
			valueFlag("-s", "s", "use <sep> as the separator"),
			valueFlag("-f", "f", "use <format> as the format. Default: %%+.6e%%+.6ei"),
			input("input"),
		},
	},
	{
		Name:    "signal",
		Summary: "Analytical simulation tool.",
		Params: []Param{
			boolFlag("-F", "F", "FLASH"),
			boolFlag("-B", "B", "bSSFP"),
			boolFlag("-T", "T", "TSE"),
			boolFlag("-M", "M", "MOLLI"),
			boolFlag("-G", "G", "MGRE"),
			boolFlag("--fat", "fat", "Simulate additional fat component."),
			boolFlag("-I", "I", "inversion recovery"),
			boolFlag("-s", "s", "inversion recovery starting from steady state"),
			listFlag("-0", "0", "range of off-resonance frequency (Hz)"),
			listFlag("-1", "1", "range of T1s (s)"),
			listFlag("-2", "2", "range of T2s (s)"),
			listFlag("-3", "3", "range of Mss"),
			valueFlag("-r", "r", "repetition time"),
			valueFlag("-e", "e", "echo time"),
			valueFlag("-f", "f", "flip ange"),
			valueFlag("-t", "t", "T1 relax period (second) for MOLLI"),
			valueFlag("-n", "n", "number of measurements"),
			valueFlag("-b", "b", "number of heart beats for MOLLI"),
			valueFlag("--av-spokes", "av_spokes", "Number of averaged consecutive spokes"),
			output("basis_functions"),
		},
	},
	{
		Name:    "sim",
		Summary: "simulation tool",
		Params: []Param{
			listFlag("--T1", "T1", "range of T1 values"),
			listFlag("--T2", "T2", "range of T2 values"),
			boolFlag("--ROT", "ROT", "homogeneously discretized simulation based on rotational matrices"),
			boolFlag("--ODE", "ODE", "full ordinary differential equation solver based simulation (default)"),
			boolFlag("--STM", "STM", "state-transition matrix based simulation"),
			boolFlag("--split-dim", "split_dim", "Split output in x y and z dimensional parts"),
			valueFlag("--seq", "seq", "configure sequence parameter"),
			valueFlag("--other", "other", "configure other parameters"),
			output("signal"),
			optOutput("derivatives"),
		},
	},
	{
		Name:    "slice",
		Summary: "Extracts a slice from positions along dimensions.",
		Params: []Param{
			tuple("dim", "pos"),
			input("input"),
			output("output"),
		},
	},
	{
		Name:    "spow",
		Summary: "Raise array to the power of {exponent}. The exponent can be a complex number.",
		Params: []Param{
			scalar("exponent"),
			input("input"),
			output("output"),
		},
	},
	{
		Name:    "sqpics",
		Summary: "Parallel-imaging compressed-sensing reconstruction.",
		Params: []Param{
			valueFlag("-l", "l", "toggle l1-wavelet or l2 regularization."),
			valueFlag("-r", "r", "regularization parameter"),
			valueFlag("-R", "R", "generalized regularization options (-Rh for help)"),
			valueFlag("-s", "s", "iteration stepsize"),
			valueFlag("-i", "i", "max. number of iterations"),
			arrayFlag("-t", "t", "k-space trajectory"),
			boolFlag("-n", "n", "disable random wavelet cycle spinning"),
			boolFlag("-g", "g", "use GPU"),
			arrayFlag("-p", "p", "pattern or weights"),
			boolFlag("-I", "I", "select IST"),
			valueFlag("-b", "b", "Lowrank block size"),
			boolFlag("-e", "e", "Scale stepsize based on max. eigenvalue"),
			boolFlag("-H", "H", "hogwild"),
			boolFlag("-F", "F", "fast"),
			arrayFlag("-T", "T", "truth file"),
			arrayFlag("-W", "W", "Warm start with <img>"),
			valueFlag("-d", "d", "Debug level"),
			valueFlag("-u", "u", "ADMM rho"),
			valueFlag("-C", "C", "ADMM max. CG iterations"),
			valueFlag("-f", "f", "restrict FOV"),
			boolFlag("-m", "m", "Select ADMM"),
			valueFlag("-w", "w", "scaling"),
			boolFlag("-S", "S", "Re-scale the image after reconstruction"),
			input("kspace"),
			input("sensitivities"),
			output("output"),
		},
	},
	{
		Name:    "squeeze",
		Summary: "Remove singleton dimensions of array.",
		Params: []Param{
			input("input"),
			output("output"),
		},
	},
	{
		Name:    "ssa",
		Summary: "Perform SSA-FARY or Singular Spectrum Analysis. <src>: [samples, coordinates]",
		Params: []Param{
			valueFlag("-w", "w", "Window length"),
			boolFlag("-z", "z", "Zeropadding [Default: True]"),
			valueFlag("-m", "m", "Remove mean [Default: True]"),
			valueFlag("-n", "n", "Normalize [Default: False]"),
			valueFlag("-r", "r", "Rank for backprojection. r < 0: Throw away first r components. r > 0: Use only first r components."),
			valueFlag("-g", "g", "Bitmask for Grouping (long value!)"),
			input("src"),
			output("eof"),
			optOutput("s"),
			optOutput("backprojection"),
		},
	},
	{
		Name:    "std",
		Summary: "Compute standard deviation along selected dimensions specified by the {bitmask}",
		Params: []Param{
			scalar("bitmask"),
			input("input"),
			output("output"),
		},
	},
	{
		Name:    "svd",
		Summary: "Compute singular-value-decomposition (SVD).",
		Params: []Param{
			boolFlag("-e", "e", "econ"),
			input("input"),
			output("u"),
			output("s"),
			output("vh"),
		},
	},
	{
		Name:    "tgv",
		Summary: "Perform total generalized variation denoising along dims specified by flags.",
		Params: []Param{
			scalar("lambda"),
			scalar("flags"),
			input("input"),
			output("output"),
		},
	},
	{
		Name:    "threshold",
		Summary: "Perform (soft) thresholding with parameter lambda.",
		Params: []Param{
			boolFlag("-H", "H", "hard thresholding"),
			boolFlag("-W", "W", "daubechies wavelet soft-thresholding"),
			boolFlag("-L", "L", "locally low rank soft-thresholding"),
			boolFlag("-D", "D", "divergence-free wavelet soft-thresholding"),
			boolFlag("-B", "B", "thresholding with binary output"),
			valueFlag("-j", "j", "joint soft-thresholding"),
			valueFlag("-b", "b", "locally low rank block size"),
			scalar("lambda"),
			input("input"),
			output("output"),
		},
	},
	{
		Name:    "toimg",
		Summary: "Create magnitude images as png or proto-dicom.",
		Params: []Param{
			valueFlag("-g", "g", "gamma level"),
			valueFlag("-c", "c", "contrast level"),
			valueFlag("-w", "w", "window level"),
			boolFlag("-d", "d", "write to dicom format (deprecated use extension .dcm)"),
			boolFlag("-m", "m", "re-scale each image"),
			boolFlag("-W", "W", "use dynamic windowing"),
			input("input"),
			path("prefix"),
		},
	},
	{
		Name:    "traj",
		Summary: "Computes k-space trajectories.",
		Params: []Param{
			valueFlag("-x", "x", "readout samples"),
			valueFlag("-y", "y", "phase encoding lines"),
			valueFlag("-d", "d", "full readout samples"),
			valueFlag("-e", "e", "number of echoes"),
			valueFlag("-a", "a", "acceleration"),
			valueFlag("-t", "t", "turns"),
			valueFlag("-m", "m", "SMS multiband factor"),
			boolFlag("-l", "l", "aligned partition angle"),
			boolFlag("-g", "g", "golden angle in partition direction"),
			boolFlag("-r", "r", "radial"),
			boolFlag("-G", "G", "golden-ratio sampling"),
			boolFlag("-H", "H", "halfCircle golden-ratio sampling"),
			valueFlag("-s", "s", "tiny golden angle"),
			boolFlag("-D", "D", "projection angle in [0 360°) else in [0 180°)"),
			valueFlag("-o", "o", "oversampling factor"),
			valueFlag("-R", "R", "rotate"),
			listFlag("-q", "q", "gradient delays: x y xy"),
			listFlag("-Q", "Q", "gradient delays: z xz yz"),
			boolFlag("-O", "O", "correct transverse gradient error for radial tajectories"),
			boolFlag("-3", "3", "3D"),
			boolFlag("-c", "c", "asymmetric trajectory [DC sampled]"),
			boolFlag("-E", "E", "multi-echo multi-spoke trajectory"),
			listFlag("-z", "z", "Undersampling in z-direction."),
			arrayFlag("-C", "C", "custom_angle file [phi + i * psi]"),
			arrayFlag("-V", "V", "custom_gdelays"),
			output("output"),
		},
	},
	{
		Name:    "transpose",
		Summary: "Transpose dimensions {dim1} and {dim2}.",
		Params: []Param{
			scalar("dim1"),
			scalar("dim2"),
			input("input"),
			output("output"),
		},
	},
	{
		Name:    "twixread",
		Summary: "Read data from Siemens twix (.dat) files.",
		Params: []Param{
			valueFlag("-x", "x", "number of samples (read-out)"),
			valueFlag("-r", "r", "radial lines"),
			valueFlag("-y", "y", "phase encoding steps"),
			valueFlag("-z", "z", "partition encoding steps"),
			valueFlag("-s", "s", "number of slices"),
			valueFlag("-v", "v", "number of averages"),
			valueFlag("-c", "c", "number of channels"),
			valueFlag("-n", "n", "number of repetitions"),
			valueFlag("-a", "a", "total number of ADCs"),
			boolFlag("-A", "A", "automatic [guess dimensions]"),
			boolFlag("-L", "L", "use linectr offset"),
			boolFlag("-P", "P", "use partctr offset"),
			boolFlag("-M", "M", "MPI mode"),
			valueFlag("-d", "d", "Debug level"),
			path("dat_file"),
			output("output"),
		},
	},
	{
		Name:    "upat",
		Summary: "Create a sampling pattern.",
		Params: []Param{
			valueFlag("-Y", "Y", "size Y"),
			valueFlag("-Z", "Z", "size Z"),
			valueFlag("-y", "y", "undersampling y"),
			valueFlag("-z", "z", "undersampling z"),
			valueFlag("-c", "c", "size of k-space center"),
			output("output"),
		},
	},
	{
		Name:    "var",
		Summary: "Compute variance along selected dimensions specified by the {bitmask}",
		Params: []Param{
			scalar("bitmask"),
			input("input"),
			output("output"),
		},
	},
	{
		Name:    "vec",
		Summary: "Create a vector of values.",
		Params: []Param{
			variadic("values"),
			output("output"),
		},
	},
	{
		Name:    "version",
		Summary: "Print BART version.",
		Params: []Param{
			valueFlag("-t", "t", "Check minimum version"),
			boolFlag("-V", "V", "Output verbose info"),
		},
	},
	{
		Name:    "walsh",
		Summary: "Estimate coil sensitivities using walsh method (use with ecaltwo).",
		Params: []Param{
			listFlag("-r", "r", "Limits the size of the calibration region."),
			listFlag("-R", "R", ""),
			listFlag("-b", "b", "Block size."),
			listFlag("-B", "B", ""),
			input("input"),
			output("output"),
		},
	},
	{
		Name:    "wave",
		Summary: "Perform a wave-caipi reconstruction.",
		Params: []Param{
			valueFlag("-r", "r", "Soft threshold lambda for wavelet or locally low rank."),
			valueFlag("-b", "b", "Block size for locally low rank."),
			valueFlag("-i", "i", "Maximum number of iterations."),
			valueFlag("-s", "s", "Step size for iterative method."),
			valueFlag("-c", "c", "Continuation value for IST/FISTA."),
			valueFlag("-t", "t", "Tolerance convergence condition for iterative method."),
			valueFlag("-e", "e", "Maximum eigenvalue of normal operator if known."),
			boolFlag("-g", "g", "use GPU"),
			boolFlag("-f", "f", "Reconstruct using FISTA instead of IST."),
			boolFlag("-H", "H", "Use hogwild in IST/FISTA."),
			boolFlag("-v", "v", "Split result to real and imaginary components."),
			boolFlag("-w", "w", "Use wavelet."),
			boolFlag("-l", "l", "Use locally low rank across the real and imaginary components."),
			input("maps"),
			input("wave"),
			input("kspace"),
			output("output"),
		},
	},
	{
		Name:    "wavelet",
		Summary: "Perform wavelet transform.",
		Params: []Param{
			boolFlag("-a", "a", "adjoint (specify dims)"),
			boolFlag("-H", "H", "type: Haar"),
			boolFlag("-D", "D", "type: Dau2"),
			boolFlag("-C", "C", "type: CDF44"),
			scalar("bitmask"),
			optVariadic("dims"),
			input("input"),
			output("output"),
		},
	},
	{
		Name:    "wavepsf",
		Summary: "Generate a wave PSF in hybrid space.",
		Params: []Param{
			boolFlag("-c", "c", "Set to use a cosine gradient wave"),
			valueFlag("-x", "x", "Number of readout points"),
			valueFlag("-y", "y", "Number of phase encode points"),
			valueFlag("-r", "r", "Resolution of phase encode in cm"),
			valueFlag("-a", "a", "Readout duration in microseconds."),
			valueFlag("-t", "t", "ADC sampling rate in seconds"),
			valueFlag("-g", "g", "Maximum gradient amplitude in Gauss/cm"),
			valueFlag("-s", "s", "Maximum gradient slew rate in Gauss/cm/second"),
			valueFlag("-n", "n", "Number of cycles in the gradient wave"),
			output("output"),
		},
	},
	{
		Name:    "whiten",
		Summary: "Apply multi-channel noise pre-whitening on <input> using noise data <ndata>.",
		Params: []Param{
			arrayFlag("-o", "o", "use external whitening matrix <optmat_in>"),
			arrayFlag("-c", "c", "use external noise covariance matrix <covar_in>"),
			boolFlag("-n", "n", "normalize variance to 1 using noise data <ndata>"),
			input("input"),
			input("ndata"),
			output("output"),
			optOutput("optmat_out"),
			optOutput("covar_out"),
		},
	},
	{
		Name:    "window",
		Summary: "Apply Hamming (Hann) window to <input> along dimensions specified by flags",
		Params: []Param{
			boolFlag("-H", "H", "Hann window"),
			scalar("flags"),
			input("input"),
			output("output"),
		},
	},
	{
		Name:    "wshfl",
		Summary: "Perform a wave-shuffling reconstruction.",
		Params: []Param{
			valueFlag("-R", "R", "Generalized regularization options. (-Rh for help)"),
			valueFlag("-b", "b", "Block size for locally low rank."),
			valueFlag("-i", "i", "Maximum number of iterations."),
			valueFlag("-j", "j", "Maximum number of CG iterations in ADMM."),
			valueFlag("-s", "s", "ADMM Rho value."),
			valueFlag("-e", "e", "Eigenvalue to scale step size. (Optional.)"),
			arrayFlag("-F", "F", "Go from shfl-coeffs to data-table. Pass in coeffs path."),
			arrayFlag("-O", "O", "Initialize reconstruction with guess."),
			valueFlag("-t", "t", "Tolerance convergence condition for FISTA."),
			boolFlag("-g", "g", "Use GPU."),
			boolFlag("-K", "K", "Go from data-table to shuffling basis k-space."),
			boolFlag("-H", "H", "Use hogwild."),
			boolFlag("-v", "v", "Split coefficients to real and imaginary components."),
			input("maps"),
			input("wave"),
			input("phi"),
			input("reorder"),
			input("table"),
			output("output"),
		},
	},
	{
		Name:    "zeros",
		Summary: "Create a zero-filled array with {dims} dimensions of size {dim1} to {dimn}.",
		Params: []Param{
			scalar("dims"),
			variadic("sizes"),
			output("output"),
		},
	},
	{
		Name:    "zexp",
		Summary: "Point-wise complex exponential.",
		Params: []Param{
			boolFlag("-i", "i", "imaginary"),
			input("input"),
			output("output"),
		},
	},
}
