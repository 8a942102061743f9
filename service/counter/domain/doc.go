// Package domain define os contratos do contador de acessos.
//
// Este pacote não depende de net/http nem do cliente Redis. O contador vive
// num store externo que oferece incremento atômico por nome; o serviço nunca
// faz leitura-modificação-escrita local.
package domain
