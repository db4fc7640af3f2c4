package catalog

import "lecturebot/internal/domain"

const (
	promptWhich   = "کدوم؟ 🤔"
	promptSubject = "کدوم درس؟ 🤔"
	promptProf    = "کدوم استاد؟ 🤔"
	promptSource  = "کدوم منبع؟ 🤔"
	promptSession = "کدوم جلسه؟ 🤔"

	backPrev = "🔙 بازگشت به منوی قبلی"

	doneAll = "✅ همه فایل‌ها ارسال شدند."
)

const welcome = `سلام 👋
قبل اینکه شروع کنی، اینو بگم:
برای بعضی درس‌ها، ما دو نوع فایل داریم:
"جزوه اصلی" و "فایل ضمیمه".
جزوه اصلی جزوه‌ایه که از ترم‌های گذشته ادیت خورده.
فایل ضمیمه شامل نکات و مطالبیه که در طول کلاس مضاف بر جزوه اصلی مطرح شده‌ و در جزوه اصلی موجود نیستن.
حالا لطفاً ترم مورد نظرت رو انتخاب کن 🙌 :`

// Default returns the lecture archive menu tree. Button labels, captions
// and file IDs are catalogue data; the structure is always
// term → subject → professor → resource type → session.
func Default() *Node {
	return &Node{
		Label:  domain.StateHome,
		Prompt: welcome,
		Children: []*Node{
			term1(),
			term2(),
		},
	}
}

func term1() *Node {
	return &Node{
		Label:  "TERM_1",
		Button: "📘 ترم 1",
		Prompt: "📚 لطفاً یکی از درس‌های ترم ۱ رو انتخاب کن:",
		Back:   "🔙 بازگشت به منوی اصلی",
		Children: []*Node{
			{
				Label:  "oloomtash_1",
				Button: "🔹 علوم تشریح 1",
				Prompt: promptWhich,
				Back:   "🔙 بازگشت به ترم 1",
				Children: []*Node{
					{
						Label:  "oloomtash_1naz",
						Button: "🧠 نظری",
						Prompt: promptWhich,
						Back:   backPrev,
						Children: []*Node{
							anatomyTheory(),
							histologyTheory(),
						},
					},
				},
			},
		},
	}
}

func anatomyTheory() *Node {
	return &Node{
		Label:  "oloomtash_1naz_anatomy",
		Button: "🦴 آناتومی",
		Prompt: promptWhich,
		Back:   backPrev,
		Children: []*Node{
			{
				Label:  "oloomtash_1naz_anatomy_farhanni",
				Button: "👨‍🏫 استاد فراهانی",
				Prompt: promptWhich,
				Back:   backPrev,
				Children: []*Node{
					{
						Label:  "oloomtash_1naz_anatomy_farhanni_power",
						Button: "📑 پاور",
						Kind:   domain.KindDocument,
						Done:   doneAll,
						Files: []domain.FileRef{
							"BQACAgQAAxkBAAJCI2joCqcjjLT2NKgPqYrmYP5GbubnAAIKFQAChODYUeU2rp8qEPMnNgQ",
							"BQACAgQAAxkBAAJCJGjoCqcwvPT2BLAWizP54OY14u7OAAINFQAChODYUVC7tgwxSXRjNgQ",
							"BQACAgQAAxkBAAJCJWjoCqdmxw_p85Gg8mvxhcSjS9-mAAJYFwACgAv5URz3AcparWdbNgQ",
							"BQACAgQAAxkBAAJCJmjoCqfjEVBB-RIMSGuxFB1pCldBAAIWGgACgy4oUqg187oQepHWNgQ",
							"BQACAgQAAxkBAAJCJ2joCqfUJhBz0-u52wyIanJdzQlsAAKEFAAC6HJJUitjeEBd5710NgQ",
							"BQACAgQAAxkBAAJCKGjoCqdPqedW1MpJzbKiK5cmnMHnAAI3GQACYGPAUuOLD8AAAZdq6zYE",
							"BQACAgQAAxkBAAJCKWjoCqcHuOJlaQGrRCaXITLZyrDfAAJYFgACNerBU6r2b8cpYlRxNgQ",
							"BQACAgQAAxkBAAJCKmjoCqflJkCV3aRCeVnenJ2T1qpzAAIWFgAC37LZUwoZ42QX4WA-NgQ",
							"BQACAgQAAxkBAAJCK2joCqc9AhRI-DB1s8dEUNfCY9p2AAImJwACcagoUD2xAvaXVJkyNgQ",
							"BQACAgQAAxkBAAJCLGjoCqcLI0-NpY7J77LI13VlHN7LAAInJwACcagoUGPCg7WghViJNgQ",
							"BQACAgQAAxkBAAJCLWjoCqfCFpT5OBtM1FKOW5d9xRNgAAI3FwAC70PYUD-JlaROvK7sNgQ",
						},
					},
					{
						Label:  "oloomtash_1naz_anatomy_farhanni_manba",
						Button: "📚 منابع مطالعاتی",
						Prompt: promptWhich,
						Back:   backPrev,
						Children: []*Node{
							{
								Label:  "oloomtash_1naz_anatomy_farhanni_manba_jozve",
								Button: "📄 جزوات جامع",
								Prompt: promptWhich,
								Back:   backPrev,
								Children: []*Node{
									{
										Label:   "oloomtash_1naz_anatomy_farhanni_jozve99",
										Button:  "📄 جزوه 99",
										Kind:    domain.KindDocument,
										Caption: "📘 جزوه 99 - استاد فراهانی",
										Files: []domain.FileRef{
											"BQACAgQAAxkBAAJCHWjn-rUvKVKRqhJ5ag_-oE-kEn-oAAIXCgACdxsQURtpL-AQh7t_NgQ",
										},
									},
								},
							},
							{
								Label:  "oloomtash_1naz_anatomy_farhanni_ref",
								Button: "📘 رفرنس",
								Kind:   domain.KindDocument,
								Done:   "✅ همه فایل‌های رفرنس ارسال شدند.",
								Files: []domain.FileRef{
									"BQACAgQAAxkBAAJCM2joGG0eXTzfoDjdJ_Kx4Fcfy33iAAKrFwACYTZIUZqDPVB85Qw9NgQ",
									"BQACAgQAAxkBAAJCNGjoGG042n6KDd23dcGZza-Gf_OCAAKtFwACYTZIUWD7weS8ZMM5NgQ",
								},
							},
						},
					},
				},
			},
		},
	}
}

func histologyTheory() *Node {
	return &Node{
		Label:  "oloomtash_1naz_baft",
		Button: "🧫 بافت‌شناسی",
		Prompt: promptWhich,
		Back:   backPrev,
		Children: []*Node{
			{
				Label:  "oloomtash_1naz_baft_mansoori",
				Button: "👨‍🏫 استاد منصوری",
				Prompt: promptSource,
				Back:   backPrev,
				Children: []*Node{
					{
						Label:   "oloomtash_1naz_baft_mansoori_manba_jozve",
						Button:  "📑 جزوات جلسه به جلسه",
						Prompt:  promptSession,
						Back:    backPrev,
						Columns: 3,
						Children: []*Node{
							{
								Label:  "oloomtash_1naz_baft_mansoori_s1",
								Button: "1️⃣ جلسه اول",
								Kind:   domain.KindVideo,
								Files:  []domain.FileRef{"BQACAgQAAxkBAAJCOmjoHOQPbx8uku6Fzgy2stNFlzZVAAIMGAAC2_qxUJkc9JzFGMG8NgQ"},
							},
							{
								Label:  "oloomtash_1naz_baft_mansoori_s2",
								Button: "2️⃣ جلسه دوم",
								Kind:   domain.KindVideo,
								Files:  []domain.FileRef{"BQACAgQAAxkBAAJCO2joHOQ-BDHXJ0d6dppTnKfE1wRfAAK0GQACT8UAAVFteb5FZSz6pTYE"},
							},
							{
								Label:  "oloomtash_1naz_baft_mansoori_s3",
								Button: "3️⃣ جلسه سوم",
								Kind:   domain.KindVideo,
								Files:  []domain.FileRef{"BQACAgQAAxkBAAJCPGjoHOTycRIvYQMohj4BXoWMMVAOAAIDGgACScdRUTUjTMtmpnZONgQ"},
							},
							{
								Label:  "oloomtash_1naz_baft_mansoori_s4",
								Button: "4️⃣ جلسه چهارم",
								Kind:   domain.KindVideo,
								Files:  []domain.FileRef{"BQACAgQAAxkBAAJCPWjoHOT5tCiWzjst9TV84__6Fn1CAAKbFgACCIAxUrrdiK807eurNgQ"},
							},
						},
					},
					{
						Label:  "oloomtash_1naz_baft_mansoori_manba_ref",
						Button: "📘 رفرنس",
						Kind:   domain.KindDocument,
						Done:   "✅ همه فایل‌های رفرنس ارسال شدند.",
						Files: []domain.FileRef{
							"BQACAgQAAxkBAAJCQ2joHcYURzyL6qLZgGWuSsVz82hSAAJcDwACesKgUcY2hI5ezC9UNgQ",
							"BQACAgQAAxkBAAJCRGjoHcb0UqHIWHYiVtTnyeghOLgYAAJRBgACFrMxU04aoXutPgN_NgQ",
							"BQACAgQAAxkBAAJCRWjoHcaCcchA7FWb45aSoRFc6f9PAAKEDAACh9fhUlA2dtotpJp-NgQ",
						},
					},
				},
			},
		},
	}
}

func term2() *Node {
	return &Node{
		Label:  "TERM_2",
		Button: "📗 ترم 2",
		Prompt: promptSubject,
		Back:   "🔙 بازگشت به خانه",
		Children: []*Node{
			oralHealth(),
			physics(),
			genetics(),
		},
	}
}

func oralHealth() *Node {
	return &Node{
		Label:  "ORAL_HEALTH_PROFESSOR",
		Button: "🦷 سلامت دهان و جامعه",
		Prompt: promptProf,
		Back:   "🔙 بازگشت به دروس",
		Children: []*Node{
			{
				Label:  "ORAL_HEALTH_FILES",
				Button: "👩‍🏫 استاد بخشنده",
				Prompt: promptWhich,
				Back:   backPrev,
				Children: []*Node{
					{
						Label:  "ORAL_HEALTH_REFERENCE",
						Button: "📘 رفرنس",
						Kind:   domain.KindDocument,
						Files:  []domain.FileRef{"BQACAgQAAxkBAAIC6WhywHEWz-jjoycdtxUJd1lkWImtAAJqKgAC5xNAUuqduCpdbgpDNgQ"},
					},
					{
						Label:  "ORAL_HEALTH_POWER",
						Button: "📊 پاور",
						Kind:   domain.KindDocument,
						Intro:  "📊 اینم پاورهای مربوط به استاد بخشنده:",
						Files: []domain.FileRef{
							"BQACAgQAAxkBAAICnWhyvGXqxdKBi5wcl4OYp6Kp5AABbQACahgAAu7giVHRNigLwirKXzYE",
							"BQACAgQAAxkBAAICnGhyvGXpb0gusp8aGdpeC7PJJKEuAAJoGAAC7uCJUWBmMNVfHnRfNgQ",
							"BQACAgQAAxkBAAICnmhyvGV9b742-2Z8xmLZM93a4F_5AAIMGQAC4HfQUTCEMHQhD1DmNgQ",
							"BQACAgQAAxkBAAICn2hyvGXo_OL4M7nLF8nHKW3R4dDIAAKnGAACi8jRU-rG_3UsdNGoNgQ",
							"BQACAgQAAxkBAAICoGhyvGX4EV1guL5Nh_ygnyBtiGamAAKpGAACi8jRUyE183QHVLhtNgQ",
							"BQACAgQAAxkBAAICoWhyvGU2QMGYieCBNsM8EZUTUmBpAAIILAACByp4UAyFu7tnreHwNgQ",
							"BQACAgQAAxkBAAIComhyvGVbGaIAAXEg6S6jV99zbyWp9QACBywAAgcqeFByAw4JEsX67jYE",
							"BQACAgQAAxkBAAICo2hyvGWhEUYIGcCPaTsap0R9k1QuAAJ-GAACbGn4UG-eHNGSKBlDNgQ",
							"BQACAgQAAxkBAAICpGhyvGUJF4RCPA68oHYCYoZNDJxRAAJ9GAACbGn4UNsq1X8KrKrqNgQ",
							"BQACAgQAAxkBAAICpWhyvGX2wz2G9ZLbgVt8X5AaWP1PAAJBGQACSuNIUeivzx1VzcsiNgQ",
						},
					},
				},
			},
		},
	}
}

func physics() *Node {
	return &Node{
		Label:  "PHYSICS",
		Button: "⚛️ فیزیک پزشکی",
		Prompt: promptWhich,
		Back:   "🔙 بازگشت به دروس",
		Children: []*Node{
			{
				Label:   "PHYSICS_POWER",
				Button:  "📊 پاور",
				Kind:    domain.KindDocument,
				Caption: "📊 پاور فیزیک پزشکی",
				Files: []domain.FileRef{
					"BQACAgQAAxkBAAO8aG9K7EOHy-mZow2eLOIFk8mNBoEAAtsaAAJg14hRvOuW4dPoIAABNgQ",
					"BQACAgQAAxkBAAO9aG9K7GFz02UAAd9BFS9bdrw_BvYqAALcGgACYNeIUX8iA7I7ENjLNgQ",
					"BQACAgQAAxkBAAO-aG9K7N6uVgyYIHXINekvqpUcScsAAt0aAAJg14hRz2yQ9tzMWLs2BA",
					"BQACAgQAAxkBAAO_aG9K7NDR6jkyHXOx9tOlZHsXcuAAAt4aAAJg14hRMm5pBbZO7uI2BA",
				},
			},
			{
				Label:   "PHYSICS_VOICE",
				Button:  "🎤 ویس",
				Kind:    domain.KindVoice,
				Caption: "🎤 ویس فیزیک پزشکی",
				Files: []domain.FileRef{
					"CQACAgQAAxkBAAIHE2hzUfN8zirh2fh7iBvSz7cz-5WWAALiGgACYNeIUbtLhGJVfdc3NgQ",
					"CQACAgQAAxkBAAIHFGhzUfOVGIhOU9_E8-00iiVTuRfoAAL4GgACYNeIUQABwqKYP9_tXDYE",
					"CQACAgQAAxkBAAIHFWhzUfM37s81NPZVXOhBigpbAYh0AAL6GgACYNeIUbFDO4ahO5JbNgQ",
					"CQACAgQAAxkBAAIHFmhzUfMrcUqA8ZzD7-lA5QizahdWAAL7GgACYNeIUU-selm0HHlJNgQ",
					"CQACAgQAAxkBAAIHF2hzUfMesU8y4KLu07cpzK8aDod7AAL8GgACYNeIUQ4LUJeDIs0_NgQ",
					"CQACAgQAAxkBAAIHGGhzUfOCLjKuQ6c4sri04T9qNPngAAL9GgACYNeIUYjnpG897j9RNgQ",
				},
			},
			{
				Label:  "PHYSICS_RESOURCES",
				Button: "📚 منابع مطالعاتی",
				Prompt: promptSource,
				Back:   "🔙 بازگشت به منوی فیزیک پزشکی",
				Children: []*Node{
					{
						Label:   "PHYSICS_SAMPLE_QUESTIONS",
						Button:  "❓ نمونه سوال",
						Kind:    domain.KindDocument,
						Caption: "❓ نمونه سوال فیزیک پزشکی",
						Files:   []domain.FileRef{"BQACAgQAAxkBAAPMaG9LcDPdu9RsvYCRBlMKYPSVIu8AArcWAAKfmcBTDQ_6qcgHnzo2BA"},
					},
					{
						Label:  "PHYSICS_COMPREHENSIVE",
						Button: "📄 جزوات جامع",
						Prompt: promptWhich,
						Back:   backPrev,
						Children: []*Node{
							{
								Label:   "PHYSICS_401_NOTES",
								Button:  "🎓 جزوه ورودی 401",
								Kind:    domain.KindDocument,
								Caption: "🎓 جزوه ورودی 401 فیزیک پزشکی",
								Files:   []domain.FileRef{"BQACAgQAAxkBAAIHIWhzUo102Tb7ajSupnlBZeLiOnS2AAKRFQAChiixUqLFEeZHmxb-NgQ"},
							},
							{
								Label:   "PHYSICS_ATTACHED_FILES",
								Button:  "📎 فایل ضمیمه",
								Kind:    domain.KindDocument,
								Caption: "📎 فایل ضمیمه فیزیک پزشکی",
								Files:   []domain.FileRef{"BQACAgQAAxkBAAIHI2hzUrGbBetV_WKDkVHqpijlFaF9AAJrGAACrD-YU_UYPeCOtD-xNgQ"},
							},
						},
					},
				},
			},
		},
	}
}

func genetics() *Node {
	return &Node{
		Label:  "GENETICS_MENU",
		Button: "🧬 ژنتیک",
		Prompt: promptProf,
		Back:   "🔙 بازگشت به دروس",
		Children: []*Node{
			{
				Label:  "GENETICS_SAYYAD",
				Button: "👩‍🏫 استاد صیاد",
				Prompt: promptSource,
				Back:   "🔙 بازگشت به منوی ژنتیک",
				Children: []*Node{
					{
						Label:   "GENETICS_SAYYAD_FULL",
						Button:  "📚 جزوه جامع",
						Kind:    domain.KindDocument,
						Caption: "📚 جزوه جامع استاد صیاد - ژنتیک",
						Files:   []domain.FileRef{"BQACAgQAAxkBAAIGs2hzTK23pPAj_0D1XiVcmv1o3E6gAAJ_HwAChL1gU2XrNIeNn7EtNgQ"},
					},
					{
						Label:   "GENETICS_SAYYAD_SESSIONS",
						Button:  "📝 جزوات جلسه به جلسه",
						Prompt:  promptSession,
						Back:    backPrev,
						Columns: 3,
						Children: []*Node{
							{
								Label:   "GENETICS_SAYYAD_S1",
								Button:  "1️⃣ جلسه اول",
								Kind:    domain.KindDocument,
								Caption: "📝 جلسه اول - استاد صیاد",
								Files:   []domain.FileRef{"BQACAgQAAxkBAAIGv2hzTPpMlTaf_x6ZA9NFnn_jxZ9TAAIcHAACv1f5Uqy0I0Zm4ZktNgQ"},
							},
							{
								Label:   "GENETICS_SAYYAD_S2",
								Button:  "2️⃣ جلسه دوم",
								Kind:    domain.KindDocument,
								Caption: "📝 جلسه دوم - استاد صیاد",
								Files:   []domain.FileRef{"BQACAgQAAxkBAAIGwmhzTQ9GxUiS4G0X9MY0SebOpgi8AAIsFwACk-8gUYZD_811Q0dGNgQ"},
							},
							{
								Label:   "GENETICS_SAYYAD_S3",
								Button:  "3️⃣ جلسه سوم",
								Kind:    domain.KindDocument,
								Caption: "📝 جلسه سوم - استاد صیاد",
								Files:   []domain.FileRef{"BQACAgQAAxkBAAIGx2hzTSfjTW0xUr2oh-k3674F2OrjAAKZHAACiLAQUZkc6PCY2geuNgQ"},
							},
						},
					},
				},
			},
			{
				Label:  "GENETICS_YASAEI",
				Button: "👨‍🏫 استاد یاسایی",
				Prompt: promptSource,
				Back:   "🔙 بازگشت به منوی ژنتیک",
				Children: []*Node{
					{
						Label:   "GENETICS_YASAEI_FULL",
						Button:  "📚 جزوه جامع",
						Kind:    domain.KindDocument,
						Caption: "📚 جزوه جامع - استاد یاسایی",
						Files:   []domain.FileRef{"BQACAgQAAxkBAAIGymhzTaB33D8BUStLukI0ByoQxhvZAAKAHwAChL1gUxdZCdRWh9haNgQ"},
					},
				},
			},
		},
	}
}
